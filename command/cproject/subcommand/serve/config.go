package serve

type Config struct {
	WebListen      *string `yaml:"webListen" validate:"required"`
	ProjectRoot    *string `yaml:"projectRoot" validate:"required"`
	ProjectName    *string `yaml:"projectName" validate:"required"`
	JwtSecret      *string `yaml:"jwtSecret"`
	MinioEndpoint  *string `yaml:"minioEndpoint"`
	MinioAccessKey *string `yaml:"minioAccessKey"`
	MinioSecretKey *string `yaml:"minioSecretKey"`
	MinioBucket    *string `yaml:"minioBucket"`
	TelemetryUrl   *string `yaml:"telemetryUrl"`
	AppName        *string `yaml:"appName"`
	AppVersion     *string `yaml:"appVersion"`
}

func (r *Config) GetWebListen() *string {
	return r.WebListen
}

func (r *Config) GetMinioEndpoint() *string {
	return r.MinioEndpoint
}

func (r *Config) GetMinioAccessKey() *string {
	return r.MinioAccessKey
}

func (r *Config) GetMinioSecretKey() *string {
	return r.MinioSecretKey
}

func (r *Config) GetTelemetryUrl() *string {
	return r.TelemetryUrl
}

func (r *Config) GetAppName() *string {
	return r.AppName
}

func (r *Config) GetAppVersion() *string {
	return r.AppVersion
}
