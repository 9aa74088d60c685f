package workflow

// stepNotes annotates known steps by name for the per-step table. Notes are
// maintained here rather than in the n8n exports so the marketing team can
// reword them without re-exporting the workflows.
var stepNotes = map[string]string{
	// Acquisition heures creuses
	"Schedule Trigger":   "Déclenche le scénario chaque semaine (heures creuses).",
	"Date Calculation":   "Prend la date actuelle et soustrait 7 jours pour cibler la semaine passée.",
	"Read Google Sheets": "Récupère les données dans Google Sheets sur la plage A:Z pour la date calculée.",
	"If Capacity < 40%":  "Teste si le nombre de passages est inférieur au seuil (40% de capacité).",
	"Send Email":         "Envoie un email promo aux abonnés si la capacité est basse.",

	// Conversion restauration
	"Schedule Daily":  "Déclenche le scénario chaque jour.",
	"Get Yesterday":   "Calcule la date d’hier (J-1).",
	"Fetch Data":      "Lit la ligne de la date d’hier dans Google Sheets.",
	"Calculate Ratio": "Calcule le ratio plats / passages pour mesurer la conversion resto.",
	"If Ratio < 15%":  "Vérifie si la conversion resto est sous 15%.",
	"Slack Alert":     "Envoie une alerte Slack pour lancer une promo resto si le ratio est faible.",

	// Fidélisation J+21
	"Daily Trigger":   "Déclenche le scénario fidélisation chaque jour.",
	"Get All Clients": "Récupère tous les clients depuis Google Sheets (fichier clients).",
	"Filter 21 Days":  "Filtre les clients dont la dernière visite date de 21 jours.",
	"Email Relance":   "Envoie un email de relance personnalisée aux clients absents depuis 3 semaines.",
}

// StepNote returns the curated note for a step name, falling back to the
// note embedded in the document, then to empty.
func StepNote(name, embedded string) string {
	if note, ok := stepNotes[name]; ok {
		return note
	}
	return embedded
}
