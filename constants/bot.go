package constants

// CPU opponent tuning
const (
	// BotPushInterval is the mean time between plain pushes (seconds)
	BotPushInterval = 0.35

	// BotJitter is the fraction of the interval randomized per push
	BotJitter = 0.3

	// BotChargeRange is the cup gap beyond which the bot winds up a charge (px)
	BotChargeRange = 180.0

	// BotStrikeRange is the gap at which a held full charge is released (px)
	BotStrikeRange = 110.0

	// BotPanicMargin is the distance to the bot's own edge that doubles its push rate (px)
	BotPanicMargin = 60.0

	// BotWaterReserve is the water below which the bot stops spending on far pushes
	BotWaterReserve = 20.0
)
