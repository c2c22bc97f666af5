package country

// User-facing messages shared by every front end.
const (
	Title              = "Where in the world?"
	ListErrorMessage   = "Failed to load countries. Try again later."
	DetailErrorMessage = "Failed to load country details. Please try again."
	NoMatchMessage     = "No countries match your search/filter."
	NoBordersMessage   = "No border countries."
)

// NotFoundMessage is shown when the API has no record for code.
func NotFoundMessage(code string) string {
	return "No country found for code " + code + "."
}
