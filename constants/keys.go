package constants

// Key bindings
const (
	KeyPushA   = 'd'
	KeyChargeA = 'a'
	KeyPushB   = 'j'
	KeyChargeB = 'l'
	KeyStart   = ' '
	KeyRestart = 'r'
	KeyMute    = 'm'
	KeyQuit    = 'q'
)
