package bootstrap

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/aimldept/portal/internal/app/controllers"
	"github.com/aimldept/portal/internal/app/models"
	appRoutes "github.com/aimldept/portal/internal/app/routes"
	appServices "github.com/aimldept/portal/internal/app/services"
	"github.com/aimldept/portal/internal/config"
	appMiddleware "github.com/aimldept/portal/internal/middleware"
	pkgAuth "github.com/aimldept/portal/internal/pkg/auth"
	"github.com/aimldept/portal/internal/pkg/logger"
	"github.com/aimldept/portal/internal/seed"
	"github.com/aimldept/portal/internal/store"
)

// Dependencies holds all the application dependencies.
type Dependencies struct {
	StudentService         *appServices.StudentService
	FacultyService         *appServices.FacultyService
	AnnouncementService    *appServices.AnnouncementService
	MaterialService        *appServices.MaterialService
	AuthController         *appControllers.AuthController
	StudentController      *appControllers.StudentController
	FacultyController      *appControllers.FacultyController
	AnnouncementController *appControllers.AnnouncementController
	MaterialController     *appControllers.MaterialController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	AdminMiddleware        *appMiddleware.AdminMiddleware
	Stores                 *store.Stores
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStores opens the four JSON-backed record stores. Faculty records are
// seeded from the discovered subject pages when no faculty file exists yet.
func SetupStores(cfg *config.Config, lgr zerolog.Logger) (*store.Stores, error) {
	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		lgr.Error().Err(err).Str("dir", cfg.Data.Dir).Msg("Failed to create data directory")
		return nil, err
	}

	subjectCodes := discoverSubjectCodes(cfg.Server.StaticDir, lgr)

	stores := store.Open(store.Paths{
		Dir:           cfg.Data.Dir,
		Students:      cfg.Data.StudentsFile,
		Faculty:       cfg.Data.FacultyFile,
		Announcements: cfg.Data.AnnouncementsFile,
		Materials:     cfg.Data.MaterialsFile,
	}, func() []models.Faculty {
		return seed.DefaultFaculty(subjectCodes, lgr)
	}, lgr)

	lgr.Info().Str("dir", cfg.Data.Dir).Msg("Record stores loaded")
	return stores, nil
}

// portalPages are the static pages that are part of the portal shell rather
// than subject pages; they never produce a faculty account.
var portalPages = map[string]struct{}{
	"index.html":             {},
	"login.html":             {},
	"admin.html":             {},
	"admin-login.html":       {},
	"faculty-login.html":     {},
	"faculty-dashboard.html": {},
}

// discoverSubjectCodes lists the subject HTML pages in the static directory
// and derives one uppercase subject code per page. The portal's own pages are
// excluded. A missing directory just yields no codes.
func discoverSubjectCodes(staticDir string, lgr zerolog.Logger) []string {
	entries, err := os.ReadDir(staticDir)
	if err != nil {
		lgr.Warn().Err(err).Str("dir", staticDir).Msg("Could not scan static directory for subject pages")
		return nil
	}

	var codes []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".html") {
			continue
		}
		if _, reserved := portalPages[name]; reserved {
			continue
		}
		codes = append(codes, strings.ToUpper(strings.TrimSuffix(name, ".html")))
	}
	sort.Strings(codes)
	return codes
}

// BuildDependencies wires services, controllers, and middleware together.
func BuildDependencies(cfg *config.Config, stores *store.Stores, lgr zerolog.Logger) (*Dependencies, error) {
	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	studentService := appServices.NewStudentService(stores.Students, cfg.Admin.Key, lgr)
	facultyService := appServices.NewFacultyService(stores.Faculty, jwtService, lgr)
	announcementService := appServices.NewAnnouncementService(stores.Announcements, stores.Faculty, lgr)
	materialService := appServices.NewMaterialService(stores.Materials, stores.Faculty, lgr)

	deps := &Dependencies{
		StudentService:         studentService,
		FacultyService:         facultyService,
		AnnouncementService:    announcementService,
		MaterialService:        materialService,
		AuthController:         appControllers.NewAuthController(studentService, cfg.Admin.Key, lgr),
		StudentController:      appControllers.NewStudentController(studentService, lgr),
		FacultyController:      appControllers.NewFacultyController(facultyService, lgr),
		AnnouncementController: appControllers.NewAnnouncementController(announcementService, lgr),
		MaterialController:     appControllers.NewMaterialController(materialService, lgr),
		AuthMiddleware:         appMiddleware.NewAuthMiddleware(jwtService),
		AdminMiddleware:        appMiddleware.NewAdminMiddleware(cfg.Admin.Key),
		Stores:                 stores,
		JWTService:             jwtService,
		Logger:                 lgr,
	}
	return deps, nil
}

// SetupRouter creates the gin engine with middleware and routes configured.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.SecurityHeaders())
	router.Use(appMiddleware.CORS())
	router.Use(appMiddleware.CacheControl())

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.StudentController,
		deps.FacultyController,
		deps.AnnouncementController,
		deps.MaterialController,
		deps.AuthMiddleware,
		deps.AdminMiddleware,
	)

	lgr.Info().Msg("Router configured")
	return router
}
