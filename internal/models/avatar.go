package model

import "strings"

// URL historique renvoyée par les anciens clients quand aucun avatar n'était choisi
const legacyPlaceholderURL = "https://example.com/default_avatar.png"

// Avatar contient les métadonnées d'affichage anonyme d'un utilisateur
type Avatar struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// ResolvedImageURL retourne l'URL de l'image ou "" si absente ou placeholder historique
func (a *Avatar) ResolvedImageURL() string {
	if a == nil {
		return ""
	}
	url := strings.TrimSpace(a.ImageURL)
	if url == "" || url == legacyPlaceholderURL {
		return ""
	}
	return url
}
