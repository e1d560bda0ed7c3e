package server

type Config struct {
	Port              string
	disableMiddleware bool
}

func NewConfig(port string) Config {
	return Config{
		Port: port,
	}
}
