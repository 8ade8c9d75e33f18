// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-fin/fin-ledger/internal/middleware"
	"github.com/go-fin/fin-ledger/internal/statementdelivery"
	"github.com/go-fin/fin-ledger/internal/statementrepo"
	"github.com/go-fin/fin-ledger/internal/statementservice"
	"github.com/go-fin/fin-ledger/internal/userdelivery"
	"github.com/go-fin/fin-ledger/internal/userrepo"
	"github.com/go-fin/fin-ledger/internal/userservice"
	"github.com/go-fin/fin-ledger/pkg/configpkg"
	"github.com/go-fin/fin-ledger/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	statementRepo := statementrepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	userService := userservice.New(userRepo, tokenMaker, config.AccessTokenDuration)
	statementService := statementservice.New(statementRepo, userRepo)

	userHandler := userdelivery.NewHandler(userService)
	statementHandler := statementdelivery.NewHandler(statementService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/users", userHandler.Create)
	engine.POST("/users/login", userHandler.Login)

	authRoutes := engine.Group("/").Use(middleware.Auth(tokenMaker))

	authRoutes.GET("/users/profile", userHandler.Profile)

	authRoutes.POST("/statements/deposit", statementHandler.Deposit)
	authRoutes.POST("/statements/withdraw", statementHandler.Withdraw)
	authRoutes.GET("/statements/balance", statementHandler.Balance)
	authRoutes.GET("/statements/:id", statementHandler.Get)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("amount", statementdelivery.ValidAmount)
		if err != nil {
			return nil, errors.New("cannot register amount validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
