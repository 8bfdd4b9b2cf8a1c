package db

import (
	"fmt"

	"github.com/linskybing/clubhub/internal/config"
	"github.com/linskybing/clubhub/internal/domain/audit"
	"github.com/linskybing/clubhub/internal/domain/club"
	"github.com/linskybing/clubhub/internal/domain/project"
	"github.com/linskybing/clubhub/internal/domain/recruitment"
	"github.com/linskybing/clubhub/internal/domain/schedule"
	"github.com/linskybing/clubhub/internal/domain/task"
	"github.com/linskybing/clubhub/internal/domain/user"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
		config.DbSSLMode,
	)
}

// Open connects with unique violations translated to gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func Init() error {
	gdb, err := Open(DSN())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	DB = gdb
	zap.L().Info("database connected", zap.String("host", config.DbHost), zap.String("db", config.DbName))
	return nil
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// questionOrderConstraint keeps sort_order unique per form. It is checked at
// commit so a save can rewrite positions in any order inside its transaction.
const questionOrderConstraint = "uq_question_form_sort_order"

func AutoMigrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(
		&user.User{},
		&club.Club{},
		&club.Member{},
		&project.Project{},
		&recruitment.Form{},
		&recruitment.Question{},
		&recruitment.Application{},
		&recruitment.Answer{},
		&audit.AuditLog{},
		&schedule.Schedule{},
		&task.Task{},
	)
	if err != nil {
		return err
	}

	q := &recruitment.Question{}
	if gdb.Migrator().HasConstraint(q, questionOrderConstraint) {
		return nil
	}
	return gdb.Exec(fmt.Sprintf(
		"ALTER TABLE %s ADD CONSTRAINT %s UNIQUE (form_id, sort_order) DEFERRABLE INITIALLY DEFERRED",
		q.TableName(), questionOrderConstraint,
	)).Error
}
