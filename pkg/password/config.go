package password

// Config holds password hashing configuration.
type Config struct {
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}
