// seed puebla la tabla de productos con datos de prueba: una mezcla de
// niveles de stock (normales, bajos, agotados y bien surtidos) para que el
// listado y las estadísticas tengan algo que mostrar en desarrollo.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración de base de datos que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invorya/inventario-api/internal/domain/entity"
	"github.com/invorya/inventario-api/internal/infrastructure/postgres"
	"github.com/invorya/inventario-api/pkg/config"
)

var categories = []string{
	"Electronics", "Clothing", "Books", "Home & Garden", "Sports",
	"Toys", "Health & Beauty", "Automotive", "Food & Beverages", "Office Supplies",
}

var suppliers = []string{
	"Tech Solutions Inc.", "Global Electronics", "Fashion Forward Ltd.",
	"Book World Publishers", "Garden Plus", "Sports Galaxy", "Toy Kingdom",
	"Beauty Essentials", "Auto Parts Pro", "Office Max",
}

var nameWords = []string{
	"premium", "classic", "portable", "wireless", "compact", "deluxe",
	"smart", "ergonomic", "vintage", "heavy", "duty", "pro", "mini",
	"ultra", "kit", "set", "series", "edition", "plus", "max",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewProductRepository(pool)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	total := 0
	// Misma mezcla que los datos de prueba originales del proyecto:
	// 50 variados, 10 de stock bajo, 5 agotados, 20 bien surtidos.
	total += create(ctx, repo, rng, 50, func() int { return rng.Intn(101) })
	total += create(ctx, repo, rng, 10, func() int { return 1 + rng.Intn(5) })
	total += create(ctx, repo, rng, 5, func() int { return 0 })
	total += create(ctx, repo, rng, 20, func() int { return 50 + rng.Intn(151) })

	fmt.Printf("seed completado: %d productos creados\n", total)
}

func create(ctx context.Context, repo *postgres.ProductRepo, rng *rand.Rand, n int, stock func() int) int {
	created := 0
	for i := 0; i < n; i++ {
		now := time.Now()
		p := &entity.Product{
			Name:          randomName(rng),
			Description:   maybe(rng, 0.8, randomDescription(rng)),
			Category:      categories[rng.Intn(len(categories))],
			StockQuantity: stock(),
			UnitPrice:     randomPrice(rng),
			Supplier:      maybe(rng, 0.7, suppliers[rng.Intn(len(suppliers))]),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := repo.Create(ctx, p); err != nil {
			fmt.Fprintf(os.Stderr, "crear producto: %v\n", err)
			continue
		}
		created++
	}
	return created
}

// randomName 2 a 4 palabras del pool.
func randomName(rng *rand.Rand) string {
	n := 2 + rng.Intn(3)
	name := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			name += " "
		}
		name += nameWords[rng.Intn(len(nameWords))]
	}
	return name
}

func randomDescription(rng *rand.Rand) string {
	return fmt.Sprintf("Producto %s de la línea %s.",
		nameWords[rng.Intn(len(nameWords))], nameWords[rng.Intn(len(nameWords))])
}

// randomPrice entre 5.00 y 999.99, dos decimales.
func randomPrice(rng *rand.Rand) decimal.Decimal {
	cents := 500 + rng.Intn(99500)
	return decimal.New(int64(cents), -2)
}

// maybe devuelve value con probabilidad p, si no cadena vacía (campo ausente).
func maybe(rng *rand.Rand, p float64, value string) string {
	if rng.Float64() < p {
		return value
	}
	return ""
}
