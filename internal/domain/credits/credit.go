package credits

import "portfolio-api/internal/domain/jsoncol"

// Credit is one line of a production's credit roll.
type Credit struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

// Parse hydrates a stored credits column. Bad text yields an empty list.
func Parse(raw string) []Credit {
	return jsoncol.ParseOrDefault(raw, []Credit{})
}
