package domain

import "time"

// Interview representa una entrevista agendada. El registro se crea una sola
// vez y nunca se modifica.
type Interview struct {
	ID            string    `json:"id"`
	CandidateName string    `json:"candidate_name"`
	CompanyName   string    `json:"company_name"`
	InterviewDate string    `json:"interview_date"` // YYYY-MM-DD
	InterviewTime string    `json:"interview_time"` // HH:MM
	Duration      int       `json:"duration"`       // minutos
	CreatedAt     time.Time `json:"created_at"`
}

// createdAtLayout es de ancho fijo en UTC: el texto almacenado ordena
// lexicográficamente igual que el instante y conserva precisión de
// nanosegundos.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

// FormatCreatedAt serializa un timestamp a su forma textual almacenada.
func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(createdAtLayout)
}

// ParseCreatedAt reconstruye el timestamp desde su forma textual almacenada.
func ParseCreatedAt(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
