package engine

import (
	"time"
)

// CanonicalLayout est le format de sortie des timestamps d'activité :
// trois chiffres de fraction exactement, sans indicateur de zone,
// interprété dans la zone de l'application
const CanonicalLayout = "2006-01-02T15:04:05.000"

// Formats d'entrée tolérés pour les timestamps de tentative : la fraction
// de seconde est optionnelle (Go l'accepte après les secondes même si le
// layout ne la mentionne pas), l'offset UTC numérique est optionnel
const (
	attemptOffsetLayout = "2006-01-02T15:04:05Z07:00"
	attemptLocalLayout  = "2006-01-02T15:04:05"
)

// AppZone est la zone horaire fixe de l'application
var AppZone = loadAppZone()

func loadAppZone() *time.Location {
	loc, err := time.LoadLocation("Europe/Bucharest")
	if err != nil {
		// Base tzdata absente du système : repli sur l'offset standard
		return time.FixedZone("EET", 2*60*60)
	}
	return loc
}

// ParseCanonical parse un timestamp au format canonique strict.
// Une valeur vide ou illisible retourne l'epoch : les entrées corrompues
// se classent comme les plus anciennes lors d'un tri, jamais d'erreur.
func ParseCanonical(raw string) time.Time {
	if raw == "" {
		return time.Unix(0, 0).UTC()
	}
	parsed, err := time.ParseInLocation(CanonicalLayout, raw, AppZone)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return parsed
}

// ParseAttempt parse un timestamp de tentative au format flexible.
// Si un offset est présent l'instant en découle directement, sinon la
// zone de l'application s'applique. Retourne false si illisible.
func ParseAttempt(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if parsed, err := time.Parse(attemptOffsetLayout, raw); err == nil {
		return parsed, true
	}
	if parsed, err := time.ParseInLocation(attemptLocalLayout, raw, AppZone); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}

// FormatCanonical rend un instant au format canonique dans la zone de
// l'application, tronqué à la milliseconde
func FormatCanonical(t time.Time) string {
	return t.In(AppZone).Format(CanonicalLayout)
}
