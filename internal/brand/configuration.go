package brand

// Configuration mirrors the persisted brand registry settings.
type Configuration struct {
	PrimaryColor         string                          `mapstructure:"primary_color"`
	NeutralColors        []string                        `mapstructure:"neutral_colors"`
	Fonts                FontConfiguration               `mapstructure:"fonts"`
	FuzzyMatchThreshold  float64                         `mapstructure:"fuzzy_match_threshold"`
	FuzzyWarningCeiling  float64                         `mapstructure:"fuzzy_warning_ceiling"`
	Directories          []string                        `mapstructure:"directories"`
	Weights              WeightsConfiguration            `mapstructure:"weights"`
	AddressAbbreviations map[string]string               `mapstructure:"address_abbreviations"`
	Companies            map[string]CompanyConfiguration `mapstructure:"companies"`
}

// FontConfiguration names the required brand font families.
type FontConfiguration struct {
	Heading string `mapstructure:"heading"`
	Body    string `mapstructure:"body"`
}

// WeightsConfiguration stores the per-category scoring weights.
type WeightsConfiguration struct {
	NAP         int `mapstructure:"nap"`
	Visual      int `mapstructure:"visual"`
	Voice       int `mapstructure:"voice"`
	Directories int `mapstructure:"directories"`
}

// CompanyConfiguration mirrors one company's persisted brand standard.
type CompanyConfiguration struct {
	OfficialName  string   `mapstructure:"official_name"`
	Tagline       string   `mapstructure:"tagline"`
	AccentColor   string   `mapstructure:"accent_color"`
	AddressLine1  string   `mapstructure:"address_line1"`
	AddressLine2  string   `mapstructure:"address_line2"`
	Phone         string   `mapstructure:"phone"`
	VoiceKeywords []string `mapstructure:"voice_keywords"`
	Status        string   `mapstructure:"status"`
}
