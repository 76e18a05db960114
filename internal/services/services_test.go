package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/domain/ports"
	"github.com/jfotso/immogest-backend/internal/domain/repositories"
	"github.com/jfotso/immogest-backend/internal/infrastructure/persistence/postgres"
)

// testEnv agrupa os repositórios e o banco sqlite em memória dos testes
type testEnv struct {
	db           *gorm.DB
	propertyRepo repositories.PropertyRepository
	saleRepo     repositories.SaleRepository
	userRepo     repositories.UserRepository
	messageRepo  repositories.MessageRepository
	refRepo      repositories.ReferenceRepository
	uow          ports.UnitOfWork

	villeID    uint
	quartierID uint
	typeID     uint
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// Um banco nomeado por teste: conexões do pool compartilham o mesmo
	// conteúdo sem vazar entre testes
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(postgres.AllModels()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := postgres.Seed(db); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	env := &testEnv{
		db:           db,
		propertyRepo: postgres.NewPropertyRepository(db),
		saleRepo:     postgres.NewSaleRepository(db),
		userRepo:     postgres.NewUserRepository(db),
		messageRepo:  postgres.NewMessageRepository(db),
		refRepo:      postgres.NewReferenceRepository(db),
		uow:          postgres.NewUnitOfWork(db),
	}
	env.seedCatalog(t)
	return env
}

// seedCatalog cria a cidade, o quartier e o tipo usados nas fixtures
func (env *testEnv) seedCatalog(t *testing.T) {
	t.Helper()

	ville := postgres.CityModel{Nom: "Douala"}
	if err := env.db.Create(&ville).Error; err != nil {
		t.Fatalf("failed to seed ville: %v", err)
	}

	quartier := postgres.DistrictModel{Nom: "Bonapriso", CityID: ville.ID}
	if err := env.db.Create(&quartier).Error; err != nil {
		t.Fatalf("failed to seed quartier: %v", err)
	}

	env.villeID = ville.ID
	env.quartierID = quartier.ID

	types, err := env.refRepo.ListTypes(context.Background())
	if err != nil || len(types) == 0 {
		t.Fatalf("failed to list seeded types: %v", err)
	}
	env.typeID = types[0].ID
}

// statusID resolve o id de um código de status do conjunto semeado
func (env *testEnv) statusID(t *testing.T, code string) uint {
	t.Helper()
	status, err := env.refRepo.FindStatusByCode(context.Background(), code)
	if err != nil || status == nil {
		t.Fatalf("seeded status %q not found: %v", code, err)
	}
	return status.ID
}

// propertyInput monta um input válido apontando para o catálogo semeado
func (env *testEnv) propertyInput(t *testing.T) PropertyInput {
	t.Helper()
	return PropertyInput{
		Titre:       "Villa moderne à Bonapriso",
		Description: "Villa de standing avec piscine",
		Prix:        45_000_000,
		Superficie:  320,
		Chambres:    4,
		SallesBain:  3,
		Adresse:     "Rue Njo-Njo, Bonapriso",
		CityID:      env.villeID,
		DistrictID:  env.quartierID,
		TypeID:      env.typeID,
		StatusID:    env.statusID(t, entities.StatusAvailable),
	}
}

// fakeBlobStore implementa ports.BlobStore em memória
type fakeBlobStore struct {
	uploads []string
	removed []string
	failUp  bool
}

func (f *fakeBlobStore) Upload(ctx context.Context, prefix, fileName string, reader io.Reader, size int64) (string, string, error) {
	if f.failUp {
		return "", "", fmt.Errorf("upload failed")
	}
	key := prefix + "/" + fileName
	f.uploads = append(f.uploads, key)
	return key, "https://blobs.test/" + key, nil
}

func (f *fakeBlobStore) Remove(ctx context.Context, objectKey string) error {
	f.removed = append(f.removed, objectKey)
	return nil
}

// fakeFeed captura as mensagens publicadas no mural
type fakeFeed struct {
	published []*entities.Message
}

func (f *fakeFeed) Publish(msg *entities.Message) {
	f.published = append(f.published, msg)
}

type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)    {}
func (noopLogger) Error(msg string, args ...any)   {}
func (noopLogger) Debug(msg string, args ...any)   {}
func (noopLogger) Warn(msg string, args ...any)    {}
func (l noopLogger) With(args ...any) ports.Logger { return l }
