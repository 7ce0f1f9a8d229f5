package textstore_test

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pizzeria/internal/adapters/out/textstore"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*textstore.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pedidos_store.txt")
	return textstore.NewStore(path, slog.Default()), path
}

func makeOrder(t *testing.T, id int64, status order.Status, toppings ...string) *order.Order {
	t.Helper()

	c := pizza.NewBuilder().
		WithBase("Tradicional").
		WithSauce("Tomate").
		WithCheese("Mozzarella").
		WithCrust("Normal").
		AddToppings(toppings).
		AddSeasoning("Orégano").
		Build()

	o, err := order.RestoreOrder(id, c, 100.0+float64(len(toppings))*15.0, status)
	require.NoError(t, err)
	return o
}

func TestStore_LoadAll(t *testing.T) {
	t.Run("should return empty result for missing file", func(t *testing.T) {
		store, _ := newTestStore(t)

		orders, err := store.LoadAll()

		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("should skip lines with fewer than nine fields", func(t *testing.T) {
		store, path := newTestStore(t)
		content := strings.Join([]string{
			"1;Tradicional;Tomate;Mozzarella;Normal;Pepperoni;;130.00;RECEIVED",
			"2;too;few;fields",
			"3;Tradicional;Tomate;Mozzarella;Normal;;;100.00;BAKING",
		}, "\n")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		orders, err := store.LoadAll()

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, int64(1), orders[0].ID())
		assert.Equal(t, int64(3), orders[1].ID())
		assert.Equal(t, order.Baking, orders[1].Status())
	})

	t.Run("should skip lines with a non-integer id", func(t *testing.T) {
		store, path := newTestStore(t)
		content := "abc;Tradicional;Tomate;Mozzarella;Normal;;;100.00;RECEIVED\n" +
			"2;Tradicional;Tomate;Mozzarella;Normal;;;100.00;READY\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		orders, err := store.LoadAll()

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, int64(2), orders[0].ID())
	})

	t.Run("should skip lines with a non-numeric total", func(t *testing.T) {
		store, path := newTestStore(t)
		content := "1;Tradicional;Tomate;Mozzarella;Normal;;;not-a-number;RECEIVED\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		orders, err := store.LoadAll()

		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("should fall back to RECEIVED for unrecognized state names", func(t *testing.T) {
		store, path := newTestStore(t)
		content := "1;Tradicional;Tomate;Mozzarella;Normal;;;100.00;VAPORIZED\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		orders, err := store.LoadAll()

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, order.Received, orders[0].Status())
	})

	t.Run("should ignore blank lines", func(t *testing.T) {
		store, path := newTestStore(t)
		content := "\n\n1;Tradicional;Tomate;Mozzarella;Normal;;;100.00;RECEIVED\n\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		orders, err := store.LoadAll()

		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("should preserve topping and seasoning order as stored", func(t *testing.T) {
		store, path := newTestStore(t)
		content := "1;Tradicional;Tomate;Mozzarella;Normal;Piña|Jamón;Pimienta|Orégano;130.00;PREPARING\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		orders, err := store.LoadAll()

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, []string{"Piña", "Jamón"}, orders[0].Composition().Toppings())
		assert.Equal(t, []string{"Pimienta", "Orégano"}, orders[0].Composition().Seasonings())
	})
}

func TestStore_SaveAll(t *testing.T) {
	t.Run("should write one record per order", func(t *testing.T) {
		store, path := newTestStore(t)
		orders := []*order.Order{
			makeOrder(t, 1, order.Received, "Pepperoni", "Champiñones"),
			makeOrder(t, 2, order.Cancelled),
		}

		require.NoError(t, store.SaveAll(orders))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "1;Tradicional;Tomate;Mozzarella;Normal;Pepperoni|Champiñones;Orégano;130.00;RECEIVED", lines[0])
		assert.Equal(t, "2;Tradicional;Tomate;Mozzarella;Normal;;Orégano;100.00;CANCELLED", lines[1])
	})

	t.Run("should fully overwrite the previous snapshot", func(t *testing.T) {
		store, path := newTestStore(t)
		require.NoError(t, store.SaveAll([]*order.Order{
			makeOrder(t, 1, order.Received),
			makeOrder(t, 2, order.Received),
		}))

		require.NoError(t, store.SaveAll([]*order.Order{makeOrder(t, 3, order.Ready)}))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
		require.Len(t, lines, 1)
		assert.True(t, strings.HasPrefix(lines[0], "3;"))
	})

	t.Run("should write an empty file for an empty registry", func(t *testing.T) {
		store, path := newTestStore(t)

		require.NoError(t, store.SaveAll(nil))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Empty(t, content)
	})
}

func TestStore_RoundTrip(t *testing.T) {
	t.Run("load after save is lossless field for field", func(t *testing.T) {
		store, _ := newTestStore(t)
		saved := []*order.Order{
			makeOrder(t, 1, order.Received, "Pepperoni", "Champiñones"),
			makeOrder(t, 2, order.Baking, "Jamón"),
			makeOrder(t, 7, order.Delivered),
			makeOrder(t, 8, order.Cancelled),
		}

		require.NoError(t, store.SaveAll(saved))
		loaded, err := store.LoadAll()

		require.NoError(t, err)
		require.Len(t, loaded, len(saved))
		for i := range saved {
			want, got := saved[i], loaded[i]
			msg := fmt.Sprintf("order %d", want.ID())
			assert.Equal(t, want.ID(), got.ID(), msg)
			assert.Equal(t, want.Status(), got.Status(), msg)
			assert.InDelta(t, want.Total(), got.Total(), 1e-9, msg)
			assert.Equal(t, want.Composition().Base(), got.Composition().Base(), msg)
			assert.Equal(t, want.Composition().Sauce(), got.Composition().Sauce(), msg)
			assert.Equal(t, want.Composition().Cheese(), got.Composition().Cheese(), msg)
			assert.Equal(t, want.Composition().Crust(), got.Composition().Crust(), msg)
			assert.Equal(t, want.Composition().Toppings(), got.Composition().Toppings(), msg)
			assert.Equal(t, want.Composition().Seasonings(), got.Composition().Seasonings(), msg)
		}
	})
}
