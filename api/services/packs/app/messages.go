package app

import "strings"

// User-facing copy. The product is French-speaking.
const (
	MsgSessionExpired     = "Votre session a expiré, veuillez vous reconnecter."
	MsgUnauthorized       = "Vous n'êtes pas autorisé à effectuer ce changement, veuillez vous reconnecter."
	MsgPackIDRequired     = "Aucun pack n'a été sélectionné."
	MsgPackNotFound       = "Le pack demandé est introuvable."
	MsgChangeFailed       = "Le changement de pack a échoué. Veuillez réessayer."
	MsgMustAuthenticate   = "Vous devez être connecté pour changer de pack."
	MsgInvalidTarget      = "Le pack demandé est invalide."
	MsgAlreadyOnPlan      = "Vous êtes déjà sur ce pack."
	MsgCatalogUnavailable = "Les packs sont momentanément indisponibles. Veuillez réessayer."
	MsgConflict           = "Votre abonnement est dans un état incohérent. Notre équipe a été prévenue."
	MsgNoPaidSubscription = "Aucun abonnement payant à résilier."
	MsgCancelFailed       = "La résiliation a échoué. Veuillez réessayer."
	MsgChangeInFlight     = "Un changement de pack est déjà en cours."

	TitleChangeSucceeded = "Pack mis à jour"
	TitleChangeFailed    = "Échec du changement de pack"
	TitleCancelled       = "Abonnement résilié"
)

// Validation reasons are part of the contract and stay untranslated.
const (
	ReasonMustAuthenticate = "must be authenticated"
	ReasonInvalidTarget    = "invalid target"
	ReasonAlreadyOnPlan    = "already on this plan"
)

var reasonMessages = map[string]string{
	ReasonMustAuthenticate: MsgMustAuthenticate,
	ReasonInvalidTarget:    MsgInvalidTarget,
	ReasonAlreadyOnPlan:    MsgAlreadyOnPlan,
}

// remoteMessages is checked in order; the first substring found wins.
var remoteMessages = []struct {
	substring string
	message   string
}{
	{"Auth session missing", MsgSessionExpired},
	{"Non autorisé", MsgUnauthorized},
	{"Pack ID requis", MsgPackIDRequired},
	{"Nouveau pack non trouvé", MsgPackNotFound},
}

// FriendlyMessage maps a raw backend message through the known-substring table.
func FriendlyMessage(raw string) (string, bool) {
	for _, m := range remoteMessages {
		if strings.Contains(raw, m.substring) {
			return m.message, true
		}
	}
	return "", false
}

// rejectionMessage is what the user sees for a success=false reply.
func rejectionMessage(raw string) string {
	if msg, ok := FriendlyMessage(raw); ok {
		return msg
	}
	if strings.TrimSpace(raw) == "" {
		return MsgChangeFailed
	}
	return raw
}

// transportMessage is what the user sees when the call itself failed.
func transportMessage(raw string) string {
	if msg, ok := FriendlyMessage(raw); ok {
		return msg
	}
	return MsgChangeFailed
}
