package storage

type Settings struct {
	// DefaultTopN is how many queued goals `stride next` suggests when
	// --top is not given.
	DefaultTopN int `json:"default_top_n"`
}

func DefaultSettings() Settings {
	return Settings{
		DefaultTopN: 3,
	}
}
