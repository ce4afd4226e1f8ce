package interfaces

// ITokenGenerator mints supplier quote tokens.
type ITokenGenerator interface {
	NewQuoteToken() (string, error)
}
