package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	"github.com/simionic-community/profiledb-backend/pkg/apihelpers"
	"github.com/simionic-community/profiledb-backend/pkg/db"
	emailsending "github.com/simionic-community/profiledb-backend/pkg/email-sending"
	usermanagement "github.com/simionic-community/profiledb-backend/pkg/user-management"
	"github.com/simionic-community/profiledb-backend/pkg/user-management/pwhash"
	"github.com/simionic-community/profiledb-backend/pkg/utils"

	profileDB "github.com/simionic-community/profiledb-backend/pkg/db/profiledb"
	userDB "github.com/simionic-community/profiledb-backend/pkg/db/userdb"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_USER_DB_USERNAME    = "USER_DB_USERNAME"
	ENV_USER_DB_PASSWORD    = "USER_DB_PASSWORD"
	ENV_PROFILE_DB_USERNAME = "PROFILE_DB_USERNAME"
	ENV_PROFILE_DB_PASSWORD = "PROFILE_DB_PASSWORD"

	ENV_USER_JWT_SIGN_KEY  = "USER_JWT_SIGN_KEY"
	ENV_FRONTEND_API_KEY   = "FRONTEND_API_KEY"
	ENV_SMTP_SERVER_CONFIG = "SMTP_SERVER_CONFIG"
)

type ProfileApiConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`

		// Mutual TLS configs
		MTLS struct {
			Use              bool                        `json:"use" yaml:"use"`
			CertificatePaths apihelpers.CertificatePaths `json:"certificate_paths" yaml:"certificate_paths"`
		} `json:"mtls" yaml:"mtls"`
	} `json:"gin_config" yaml:"gin_config"`

	// user management configs
	UserManagementConfig struct {
		PWHashing struct {
			Argon2Memory      uint32 `json:"argon2_memory" yaml:"argon2_memory"`
			Argon2Iterations  uint32 `json:"argon2_iterations" yaml:"argon2_iterations"`
			Argon2Parallelism uint8  `json:"argon2_parallelism" yaml:"argon2_parallelism"`
		} `json:"pw_hashing" yaml:"pw_hashing"`
		UserJWTConfig struct {
			SignKey   string        `json:"sign_key" yaml:"sign_key"`
			ExpiresIn time.Duration `json:"expires_in" yaml:"expires_in"`
		} `json:"user_jwt_config" yaml:"user_jwt_config"`
	} `json:"user_management_config" yaml:"user_management_config"`

	// DB configs
	DBConfigs struct {
		UserDB    db.DBConfigYaml `json:"user_db" yaml:"user_db"`
		ProfileDB db.DBConfigYaml `json:"profile_db" yaml:"profile_db"`
	} `json:"db_configs" yaml:"db_configs"`

	// Base URL of the web front end, used to build links in emails
	AppRootURL string `json:"app_root_url" yaml:"app_root_url"`

	// API keys accepted from the trusted front end for federated endpoints
	FrontendAPIKeys []string `json:"frontend_api_keys" yaml:"frontend_api_keys"`

	EmailConfig struct {
		// "smtp" or "file"
		Provider             string `json:"provider" yaml:"provider"`
		SmtpServerConfigPath string `json:"smtp_server_config_path" yaml:"smtp_server_config_path"`
		FileOutDir           string `json:"file_out_dir" yaml:"file_out_dir"`
	} `json:"email_config" yaml:"email_config"`
}

var (
	userDBService    *userDB.UserDBService
	profileDBService *profileDB.ProfileDBService
)

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(
		conf.Logging.LogLevel,
		conf.Logging.IncludeSrc,
		conf.Logging.LogToFile,
		conf.Logging.Filename,
		conf.Logging.MaxSize,
		conf.Logging.MaxAge,
		conf.Logging.MaxBackups,
		conf.Logging.CompressOldLogs,
	)

	// Override secrets from environment variables
	secretsOverride()

	// Init DBs
	initDBs()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// init argon2
	pwhash.InitArgonParams(
		conf.UserManagementConfig.PWHashing.Argon2Memory,
		conf.UserManagementConfig.PWHashing.Argon2Iterations,
		conf.UserManagementConfig.PWHashing.Argon2Parallelism,
	)

	// init user management
	initUserManagement()

	// init email sending
	initEmailSending()
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_USER_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.UserDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_USER_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.UserDB.Password = dbPassword
	}

	if dbUsername := os.Getenv(ENV_PROFILE_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.ProfileDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_PROFILE_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.ProfileDB.Password = dbPassword
	}

	if userJwtSignKey := os.Getenv(ENV_USER_JWT_SIGN_KEY); userJwtSignKey != "" {
		conf.UserManagementConfig.UserJWTConfig.SignKey = userJwtSignKey
	}

	if frontendAPIKey := os.Getenv(ENV_FRONTEND_API_KEY); frontendAPIKey != "" {
		conf.FrontendAPIKeys = append(conf.FrontendAPIKeys, frontendAPIKey)
	}

	if smtpServerConfig := os.Getenv(ENV_SMTP_SERVER_CONFIG); smtpServerConfig != "" {
		conf.EmailConfig.SmtpServerConfigPath = smtpServerConfig
	}
}

func initDBs() {
	var err error
	userDBService, err = userDB.NewUserDBService(db.DBConfigFromYamlObj(conf.DBConfigs.UserDB))
	if err != nil {
		slog.Error("Error connecting to User DB", slog.String("error", err.Error()))
		return
	}

	profileDBService, err = profileDB.NewProfileDBService(db.DBConfigFromYamlObj(conf.DBConfigs.ProfileDB))
	if err != nil {
		slog.Error("Error connecting to Profile DB", slog.String("error", err.Error()))
		return
	}
}

func initUserManagement() {
	usermanagement.Init(userDBService, profileDBService)
}

func initEmailSending() {
	switch conf.EmailConfig.Provider {
	case emailsending.EMAIL_PROVIDER_FILE:
		if err := emailsending.InitFileSender(conf.EmailConfig.FileOutDir); err != nil {
			slog.Error("Error initializing file email sender", slog.String("error", err.Error()))
			panic(err)
		}
	case emailsending.EMAIL_PROVIDER_SMTP:
		if err := emailsending.InitSmtpSender(conf.EmailConfig.SmtpServerConfigPath); err != nil {
			slog.Error("Error initializing SMTP email sender", slog.String("error", err.Error()))
			panic(err)
		}
	default:
		slog.Error("Unknown email provider", slog.String("provider", conf.EmailConfig.Provider))
		panic("unknown email provider")
	}
}
