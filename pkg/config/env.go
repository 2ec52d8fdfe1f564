package config

const EnvPrefix = "BOOKLIB"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	CartDriverMemory = "memory"
	CartDriverRedis  = "redis"
)

const (
	EnvAppEnv          = "BOOKLIB_APP_ENV"
	EnvPort            = "BOOKLIB_APP_PORT"
	EnvCartDriver      = "BOOKLIB_CART_DRIVER"
	EnvCartAbsoluteTTL = "BOOKLIB_CART_ABSOLUTE_TTL"
	EnvCartSlidingTTL  = "BOOKLIB_CART_SLIDING_TTL"
	EnvCatalogPageSize = "BOOKLIB_CATALOG_PAGE_SIZE"
	EnvSessionSecret   = "BOOKLIB_SESSION_SECRET"
	EnvSessionTTL      = "BOOKLIB_SESSION_TTL"
	EnvRedisURL        = "BOOKLIB_REDIS_URL"
	EnvRedisAddr       = "BOOKLIB_REDIS_ADDR"
)
