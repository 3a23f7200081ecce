package appcontext

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/rj/api/token"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationContext struct {
	DbConn         *pgxpool.Pool
	DbDao          db.IStore
	Cf             *config.Config
	TokenMaker     token.Maker[uuid.UUID]
	UserService    service.IUserService
	AuthService    service.IAuthService
	ProductService service.IProductService
	OrderService   service.IOrderService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}

	err := app.Init()
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpdbConn()
	if err != nil {
		return err
	}
	err = app.setUpdbDao()
	if err != nil {
		return err
	}

	err = app.setTokenMaker()
	if err != nil {
		return err
	}

	err = app.setUpUserService()
	if err != nil {
		return err
	}

	err = app.setUpAuthService()
	if err != nil {
		return err
	}

	err = app.setUpProductService()
	if err != nil {
		return err
	}

	err = app.setUpOrderService()
	if err != nil {
		return err
	}

	err = app.dbInit()
	if err != nil {
		return err
	}

	return nil
}

func (app *ApplicationContext) setUpdbConn() error {
	log.Printf("Start setup database connection")
	conn, err := pgxpool.New(context.Background(),
		fmt.Sprintf("postgresql://%s:%s@%s:%s/%s", app.Cf.DbUser, app.Cf.DbPas, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbName))
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpdbDao() error {
	log.Printf("Start setup database DAO")
	app.DbDao = db.NewStore(app.DbConn)
	log.Printf("Finish setup database DAO")
	return nil
}

func (app *ApplicationContext) setUpUserService() error {
	log.Printf("Start setup user service")
	app.UserService = service.NewUserService(app.DbDao)
	log.Printf("Finish setup user service")
	return nil
}

func (app *ApplicationContext) setUpAuthService() error {
	log.Printf("Start setup auth service")
	app.AuthService = service.NewAuthService(app.DbDao, app.UserService, app.TokenMaker)
	log.Printf("Finish setup auth service")
	return nil
}

func (app *ApplicationContext) setUpProductService() error {
	log.Printf("Start setup product service")
	app.ProductService = service.NewProductService(app.DbDao)
	log.Printf("Finish setup product service")
	return nil
}

func (app *ApplicationContext) setUpOrderService() error {
	log.Printf("Start setup order service")
	app.OrderService = service.NewOrderService(app.DbDao)
	log.Printf("Finish setup order service")
	return nil
}

func (app *ApplicationContext) setTokenMaker() error {
	log.Printf("Start setup token maker")

	tokenMaker, err := token.NewPasetoMaker[uuid.UUID](app.Cf.AuthTokenKey)
	if err != nil {
		log.Fatalf("無法創建 token maker: %v", err)
	}

	app.TokenMaker = tokenMaker
	log.Printf("Finish setup token maker")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			app.DbConn.Close()
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}

func runDBMigration(migrationURL string, dbSource string) error {
	migrateion, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		return err
	}

	return migrateion.Up()
}

// dbInit 執行migration並確保至少有一位admin
func (app *ApplicationContext) dbInit() error {
	log.Printf("Start setup db init")

	migrationURL := app.Cf.MigrationURL
	if migrationURL == "" {
		migrationURL = "file://db/migration"
	}

	err := runDBMigration(
		migrationURL,
		fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", app.Cf.DbUser, app.Cf.DbPas, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbName),
	)
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	ctx := context.Background()

	//系統沒有admin時所有角色管理操作都做不了, 啟動時用ADMIN_EMAIL把既有帳號提為admin
	var seedAdmin = func(repo *sqlc.Queries) error {
		if app.Cf.AdminEmail == "" {
			return nil
		}

		user, err := repo.GetUserByEmail(ctx, app.Cf.AdminEmail)
		if err != nil {
			//帳號還沒註冊就略過, 下次啟動再補
			if errors.Is(err, pgx.ErrNoRows) {
				log.Printf("admin seed skipped: %s is not registered yet", app.Cf.AdminEmail)
				return nil
			}
			return err
		}

		if user.Role == string(constants.RoleAdmin) {
			return nil
		}

		_, err = repo.SetUserRole(ctx, sqlc.SetUserRoleParams{
			ID:   user.ID,
			Role: string(constants.RoleAdmin),
		})
		return err
	}

	err = app.DbDao.ExecMultiTx(ctx, []func(*sqlc.Queries) error{seedAdmin})
	if err != nil {
		return err
	}

	log.Printf("Finish setup db init")
	return nil
}
