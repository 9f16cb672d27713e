package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App         App
		Calendar    Calendar
		Reservation Reservation
		WhatsApp    WhatsApp
		Minio       AppMinio
		JWT         JWT
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Address                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeoutInSeconds  int
		MaxTimeRequestsPerSeconds int
	}

	// Calendar carries the layout window the widget renders: a rolling run
	// of days, each clipped to an identical intra-day lane.
	Calendar struct {
		WindowDays               int
		DayWindowStartMinutes    int
		DayWindowEndMinutes      int
		MinEventHeightPercent    float64
		CutoffMinutesBeforeStart int
		CacheTTLInSeconds        int
	}

	Reservation struct {
		QueueName              string
		DLQName                string
		WorkerCronSpec         string
		WorkerBatchSize        int
		RetryThreshold         int
		AppendsPerSecond       int
		WorkerLockTTLInSeconds int
	}

	WhatsApp struct {
		Number string
	}

	AppMinio struct {
		BucketName                          string
		PreSignedUrlObjectExpiryTimeInHours int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
