package domain

// SavedPrompt is a named reusable prompt. Names are not required to be unique.
type SavedPrompt struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Config mirrors the on-disk config.json document. It is always read and
// written as a whole; there are no partial updates.
type Config struct {
	Prompts         []SavedPrompt `json:"prompts"`
	Model           string        `json:"model"`
	TokenPricePer1K float64       `json:"token_price_per_1k"`
}

// DefaultConfig returns the document used when no config file exists yet or
// the existing one cannot be read.
func DefaultConfig() Config {
	return Config{
		Prompts:         []SavedPrompt{},
		Model:           "gpt-4o-mini",
		TokenPricePer1K: 0.002,
	}
}

// FindPrompt returns the first saved prompt with the given name.
func (c Config) FindPrompt(name string) (SavedPrompt, bool) {
	for _, p := range c.Prompts {
		if p.Name == name {
			return p, true
		}
	}
	return SavedPrompt{}, false
}

// AddPrompt appends a saved prompt. Duplicate names are allowed.
func (c *Config) AddPrompt(name, text string) {
	c.Prompts = append(c.Prompts, SavedPrompt{Name: name, Text: text})
}

// RemovePrompt deletes the first prompt with the given name and reports
// whether anything was removed.
func (c *Config) RemovePrompt(name string) bool {
	for i, p := range c.Prompts {
		if p.Name == name {
			c.Prompts = append(c.Prompts[:i], c.Prompts[i+1:]...)
			return true
		}
	}
	return false
}
