package settings

// Config is the top-level configuration for a tetris-stack run.
type Config struct {
	Logger  Logger  `mapstructure:"logger" yaml:"logger"`
	Game    Game    `mapstructure:"game" yaml:"game"`
	Console Console `mapstructure:"console" yaml:"console"`
}

// Logger is the configuration for the logger.
// When FileLogName is empty logs go to stderr, which mixes with the console.
type Logger struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name" yaml:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age" validate:"gte=0"`   // Days
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// Game is the configuration for the piece supply.
type Game struct {
	QueueCapacity int    `mapstructure:"queue_capacity" yaml:"queue_capacity" validate:"min=1,max=64"`
	StackCapacity int    `mapstructure:"stack_capacity" yaml:"stack_capacity" validate:"min=1,max=64"`
	Level         string `mapstructure:"level" yaml:"level" validate:"oneof=novice adventurer master"`
	Seed          uint64 `mapstructure:"seed" yaml:"seed"` // 0 seeds from the clock
}

// Console is the configuration for the interactive driver.
type Console struct {
	Pause bool `mapstructure:"pause" yaml:"pause"`
	Color bool `mapstructure:"color" yaml:"color"`
}

const (
	LevelNovice     = "novice"
	LevelAdventurer = "adventurer"
	LevelMaster     = "master"
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Logger: Logger{
			LogLevel:    "info",
			FileLogName: "logs/tetrisstack.log",
			MaxBackups:  3,
			MaxAge:      7,
			MaxSize:     10,
		},
		Game: Game{
			QueueCapacity: 5,
			StackCapacity: 3,
			Level:         LevelMaster,
		},
		Console: Console{
			Pause: true,
			Color: true,
		},
	}
}
