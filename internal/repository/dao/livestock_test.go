package dao

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		// Unit tests still run; the integration tests skip themselves.
		log.Printf("docker is not available, skipping integration tests: %v", err)
		os.Exit(m.Run())
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=farmstead",
			"POSTGRES_PASSWORD=farmstead",
			"POSTGRES_DB=farmstead_test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}
	_ = resource.Expire(300)

	dsn := fmt.Sprintf(
		"host=localhost port=%v user=farmstead password=farmstead dbname=farmstead_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)

	pool.MaxWait = 60 * time.Second
	err = pool.Retry(func() error {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Ping(); err != nil {
			return err
		}
		testDB = db
		return nil
	})
	if err != nil {
		log.Fatalf("could not connect to postgres container: %v", err)
	}

	if err := InitTables(testDB); err != nil {
		log.Fatalf("could not migrate tables: %v", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres container: %v", err)
	}

	os.Exit(code)
}

// newTestLivestockDAO skips when docker is unavailable and wipes the
// livestock tables so every test starts from an empty farm.
func newTestLivestockDAO(t *testing.T) *LivestockDAO {
	t.Helper()
	if testDB == nil {
		t.Skip("docker is not available")
	}
	for _, table := range []string{"animals", "cost_entries", "livestock_sales", "livestock_types"} {
		require.NoError(t, testDB.Exec("DELETE FROM "+table).Error)
	}
	return NewLivestockDAO(testDB)
}

func seedSheep(t *testing.T, d *LivestockDAO) LivestockType {
	t.Helper()
	sheep, err := d.UpsertType(context.Background(), LivestockType{
		Name:              "Sheep",
		Quantity:          10,
		TotalPurchaseCost: decimal.NewFromInt(60),
		TotalCostOfLiving: decimal.NewFromInt(40),
	})
	require.NoError(t, err)
	return sheep
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "want %v, got %v", want, got)
}

func TestLivestockType_CostPerUnit_Arithmetic(t *testing.T) {
	sheep := LivestockType{
		Quantity:          10,
		InitialQuantity:   10,
		TotalPurchaseCost: decimal.NewFromInt(60),
		TotalCostOfLiving: decimal.NewFromInt(40),
	}
	assertDecimal(t, "10", sheep.CostPerUnit())

	// The baseline does not move when stock depletes.
	sheep.Quantity = 6
	assertDecimal(t, "10", sheep.CostPerUnit())

	empty := LivestockType{TotalPurchaseCost: decimal.NewFromInt(100)}
	assertDecimal(t, "0", empty.CostPerUnit())
}

func TestLivestockDAO_UpsertType_MergesExisting(t *testing.T) {
	d := newTestLivestockDAO(t)
	seedSheep(t, d)

	merged, err := d.UpsertType(context.Background(), LivestockType{
		Name:              "Sheep",
		Quantity:          5,
		TotalPurchaseCost: decimal.NewFromInt(30),
	})
	require.NoError(t, err)

	assert.Equal(t, 15, merged.Quantity)
	assert.Equal(t, 15, merged.InitialQuantity)
	assertDecimal(t, "90", merged.TotalPurchaseCost)
	assertDecimal(t, "40", merged.TotalCostOfLiving)
}

func TestLivestockDAO_AddCost(t *testing.T) {
	d := newTestLivestockDAO(t)
	seedSheep(t, d)

	entry, err := d.AddCost(context.Background(), "Sheep", decimal.NewFromInt(25), "2025-03", "feed")
	require.NoError(t, err)

	assert.Equal(t, "2025-03", entry.Month)
	assertDecimal(t, "25", entry.Amount)
	assertDecimal(t, "65", entry.Type.TotalCostOfLiving)

	history, err := d.GetCostHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Sheep", history[0].Type.Name)

	_, err = d.AddCost(context.Background(), "Llama", decimal.NewFromInt(5), "2025-03", "")
	assert.ErrorIs(t, err, ErrLivestockTypeNotFound)
}

func TestLivestockDAO_Sell_FreezesCostPerUnit(t *testing.T) {
	d := newTestLivestockDAO(t)
	seedSheep(t, d)

	sale, err := d.Sell(context.Background(), "Sheep", 4, decimal.NewFromInt(500), "market day")
	require.NoError(t, err)

	assertDecimal(t, "10", sale.CostPerUnit)
	assertDecimal(t, "500", sale.SalePrice)
	assert.Equal(t, 6, sale.Type.Quantity)

	// Later costs reprice future sales, not past ones.
	_, err = d.AddCost(context.Background(), "Sheep", decimal.NewFromInt(100), "2025-04", "")
	require.NoError(t, err)

	second, err := d.Sell(context.Background(), "Sheep", 2, decimal.NewFromInt(300), "")
	require.NoError(t, err)
	assertDecimal(t, "20", second.CostPerUnit)

	sales, err := d.GetAllSales(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 2)
	for _, s := range sales {
		if s.Quantity == 4 {
			assertDecimal(t, "10", s.CostPerUnit)
		}
	}
}

func TestLivestockDAO_Sell_InsufficientStockLeavesStateUntouched(t *testing.T) {
	d := newTestLivestockDAO(t)
	seedSheep(t, d)

	_, err := d.Sell(context.Background(), "Sheep", 11, decimal.NewFromInt(900), "")
	require.ErrorIs(t, err, ErrInsufficientStock)

	sheep, err := d.GetTypeByName(context.Background(), "Sheep")
	require.NoError(t, err)
	assert.Equal(t, 10, sheep.Quantity)

	sales, err := d.GetAllSales(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sales)

	_, err = d.Sell(context.Background(), "Llama", 1, decimal.NewFromInt(10), "")
	assert.ErrorIs(t, err, ErrLivestockTypeNotFound)
}

func TestLivestockDAO_TotalSalesDerivedFromRecords(t *testing.T) {
	d := newTestLivestockDAO(t)
	seedSheep(t, d)

	_, err := d.Sell(context.Background(), "Sheep", 3, decimal.NewFromInt(200), "")
	require.NoError(t, err)
	_, err = d.Sell(context.Background(), "Sheep", 2, decimal.NewFromInt(150), "")
	require.NoError(t, err)

	sheep, err := d.GetTypeByName(context.Background(), "Sheep")
	require.NoError(t, err)
	assertDecimal(t, "350", sheep.TotalSales)
	assert.Equal(t, 5, sheep.Quantity)
}

func TestLivestockDAO_ResetAllSales_RestoresQuantities(t *testing.T) {
	d := newTestLivestockDAO(t)
	seedSheep(t, d)

	_, err := d.Sell(context.Background(), "Sheep", 4, decimal.NewFromInt(500), "")
	require.NoError(t, err)
	_, err = d.Sell(context.Background(), "Sheep", 2, decimal.NewFromInt(100), "")
	require.NoError(t, err)

	require.NoError(t, d.ResetAllSales(context.Background()))

	sheep, err := d.GetTypeByName(context.Background(), "Sheep")
	require.NoError(t, err)
	assert.Equal(t, 10, sheep.Quantity)
	assertDecimal(t, "0", sheep.TotalSales)

	sales, err := d.GetAllSales(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestLivestockDAO_ResetCost_KeepsHistory(t *testing.T) {
	d := newTestLivestockDAO(t)
	seedSheep(t, d)

	_, err := d.AddCost(context.Background(), "Sheep", decimal.NewFromInt(30), "2025-02", "")
	require.NoError(t, err)

	require.NoError(t, d.ResetCost(context.Background(), "Sheep"))

	sheep, err := d.GetTypeByName(context.Background(), "Sheep")
	require.NoError(t, err)
	assertDecimal(t, "0", sheep.TotalCostOfLiving)

	history, err := d.GetCostHistory(context.Background())
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestLivestockDAO_RegisterAnimal_BumpsBalance(t *testing.T) {
	d := newTestLivestockDAO(t)

	animal, err := d.RegisterAnimal(context.Background(), "Goat", Animal{
		PurchasePrice: decimal.NewFromInt(80),
		Production:    "milk",
	})
	require.NoError(t, err)

	assert.Equal(t, "Goat", animal.Type.Name)
	assert.Equal(t, 1, animal.Type.Quantity)
	assert.Equal(t, 1, animal.Type.InitialQuantity)
	assertDecimal(t, "80", animal.Type.TotalPurchaseCost)

	// A second animal of the same type merges into the same balance row.
	second, err := d.RegisterAnimal(context.Background(), "Goat", Animal{
		PurchasePrice: decimal.NewFromInt(70),
	})
	require.NoError(t, err)
	assert.Equal(t, animal.TypeID, second.TypeID)
	assert.Equal(t, 2, second.Type.Quantity)
	assertDecimal(t, "150", second.Type.TotalPurchaseCost)
}

func TestLivestockDAO_DeleteAnimal_LeavesBalanceUntouched(t *testing.T) {
	d := newTestLivestockDAO(t)

	animal, err := d.RegisterAnimal(context.Background(), "Goat", Animal{
		PurchasePrice: decimal.NewFromInt(80),
	})
	require.NoError(t, err)

	require.NoError(t, d.DeleteAnimal(context.Background(), animal.ID))

	goat, err := d.GetTypeByName(context.Background(), "Goat")
	require.NoError(t, err)
	assert.Equal(t, 1, goat.Quantity)

	err = d.DeleteAnimal(context.Background(), animal.ID)
	assert.ErrorIs(t, err, ErrAnimalNotFound)
}
