package app

import "github.com/tbeaudouin05/packchange/api/services/packs/model"

// Classify labels the change from current to target. A current plan with an empty ID
// means the user has none yet. The result is advisory: the change endpoint decides
// on its own what actually happens.
func Classify(current, target model.Plan) ChangeType {
	switch {
	case current.ID == "":
		return ChangeFirstPack
	case target.Price > current.Price:
		return ChangeUpgrade
	case target.Price < current.Price:
		return ChangeDowngrade
	default:
		return ChangeSamePrice
	}
}

// ButtonLabel is the call-to-action shown next to a plan.
func ButtonLabel(ct ChangeType, isCurrent bool) string {
	if isCurrent {
		return "Pack actuel"
	}
	switch ct {
	case ChangeFirstPack:
		return "Choisir ce pack"
	case ChangeUpgrade:
		return "Passer à ce pack"
	case ChangeDowngrade:
		return "Rétrograder"
	default:
		return "Changer de pack"
	}
}
