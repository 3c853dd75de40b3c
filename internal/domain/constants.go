package domain

// Participant unit keys of Event.Participants
const (
	ParticipantLC      = "lc"
	ParticipantEG      = "eg"
	ParticipantRS      = "rs"
	ParticipantLeaders = "leaders"
)

// BaseParticipantUnits are the participant keys every quote resolves
var BaseParticipantUnits = []string{
	ParticipantLC,
	ParticipantEG,
	ParticipantRS,
	ParticipantLeaders,
}

// Default engine configuration values
const (
	DefaultCurrency    = "EUR"
	DefaultCheapMax    = "10.00"
	DefaultMediumMax   = "20.00"
	DefaultMarginBest  = "0.05"
	DefaultMarginWorst = "0.10"

	DefaultSuggestionLimit = 10
	MaxSuggestionLimit     = 50
)

// MoneyPlaces is the number of decimal places every amount is rounded to
const MoneyPlaces = 2

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
