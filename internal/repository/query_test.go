package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhereClause_Empty(t *testing.T) {
	where, args := whereClause(nil)
	assert.Equal(t, "", where)
	assert.Empty(t, args)
}

func TestWhereClause_Conjunction(t *testing.T) {
	where, args := whereClause([]Cond{
		Eq("person_type", "IN"),
		Like("last_name", "%San%"),
	})
	assert.Equal(t, " WHERE person_type = ? AND last_name LIKE ?", where)
	assert.Equal(t, []any{"IN", "%San%"}, args)
}

func TestWhereClause_NullOps(t *testing.T) {
	where, args := whereClause([]Cond{
		IsNull("sell_end_date"),
		NotNull("discontinued_date"),
	})
	assert.Equal(t, " WHERE sell_end_date IS NULL AND discontinued_date IS NOT NULL", where)
	assert.Empty(t, args)
}

func TestWhereClause_Comparisons(t *testing.T) {
	where, args := whereClause([]Cond{
		Ge("list_price", 100),
		Le("list_price", 500),
		Gt("order_qty", 0),
		Lt("status", 5),
		Ne("status", 6),
	})
	assert.Equal(t,
		" WHERE list_price >= ? AND list_price <= ? AND order_qty > ? AND status < ? AND status <> ?",
		where)
	assert.Equal(t, []any{100, 500, 0, 5, 6}, args)
}

func TestOrderClause_KnownKey(t *testing.T) {
	sortable := map[string]string{"lastname": "last_name"}

	assert.Equal(t, " ORDER BY last_name ASC",
		orderClause(sortable, "business_entity_id", "lastname", false))
	assert.Equal(t, " ORDER BY last_name DESC",
		orderClause(sortable, "business_entity_id", "LastName", true))
}

// An unknown or empty sort key falls back to identity order ascending,
// never to an error.
func TestOrderClause_UnknownKeyFallsBack(t *testing.T) {
	sortable := map[string]string{"lastname": "last_name"}

	assert.Equal(t, " ORDER BY business_entity_id ASC",
		orderClause(sortable, "business_entity_id", "nonsense", true))
	assert.Equal(t, " ORDER BY business_entity_id ASC",
		orderClause(sortable, "business_entity_id", "", false))
	assert.Equal(t, " ORDER BY business_entity_id ASC",
		orderClause(nil, "business_entity_id", "lastname", false))
}

func TestPageClause_FirstPage(t *testing.T) {
	assert.Equal(t, " LIMIT 10 OFFSET 0", pageClause(1, 10))
	assert.Equal(t, " LIMIT 25 OFFSET 50", pageClause(3, 25))
}

func TestPageClause_ClampsInvalidInputs(t *testing.T) {
	assert.Equal(t, " LIMIT 1 OFFSET 0", pageClause(0, 0))
	assert.Equal(t, " LIMIT 10 OFFSET 0", pageClause(-3, 10))
}
