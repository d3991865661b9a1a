package configs

type options struct {
	envFilePath string
}

type Option func(*options)

func defaultOptions() *options {
	return &options{envFilePath: ".env"}
}

// WithEnvFilePath overrides the env file location, empty disables loading.
func WithEnvFilePath(path string) Option {
	return func(o *options) {
		o.envFilePath = path
	}
}
