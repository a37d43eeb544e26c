package finance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/finance"
)

func TestWithRunningBalance_OrdenaYAcumula(t *testing.T) {
	entries := []entity.CashFlowEntry{
		in("a", day(2025, time.March, 1), "100"),
		in("c", day(2025, time.March, 3), "50"),
		out("b", day(2025, time.March, 2), "30"),
	}

	lines := finance.WithRunningBalance(entries)
	require.Len(t, lines, 3)

	ids := []string{lines[0].Entry.ID, lines[1].Entry.ID, lines[2].Entry.ID}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
	assertDec(t, "100", lines[0].RunningBalance)
	assertDec(t, "70", lines[1].RunningBalance)
	assertDec(t, "120", lines[2].RunningBalance)
}

func TestWithRunningBalance_EmpatesConservanOrden(t *testing.T) {
	same := day(2025, time.March, 1)
	entries := []entity.CashFlowEntry{
		out("x", same, "10"),
		in("y", same, "40"),
		in("z", day(2025, time.February, 28), "5"),
	}
	lines := finance.WithRunningBalance(entries)
	require.Len(t, lines, 3)
	assert.Equal(t, "z", lines[0].Entry.ID)
	assert.Equal(t, "x", lines[1].Entry.ID)
	assert.Equal(t, "y", lines[2].Entry.ID)
	assertDec(t, "-5", lines[1].RunningBalance)
	assertDec(t, "35", lines[2].RunningBalance)
}

func TestWithRunningBalance_VacioDevuelveVacio(t *testing.T) {
	lines := finance.WithRunningBalance(nil)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestWithRunningBalance_NoModificaLaEntrada(t *testing.T) {
	entries := []entity.CashFlowEntry{
		in("late", day(2025, time.March, 9), "1"),
		in("early", day(2025, time.March, 1), "1"),
	}
	_ = finance.WithRunningBalance(entries)
	assert.Equal(t, "late", entries[0].ID)
}

func TestTotals(t *testing.T) {
	lines := finance.WithRunningBalance([]entity.CashFlowEntry{
		in("a", day(2025, time.March, 1), "100"),
		out("b", day(2025, time.March, 2), "30"),
		in("c", day(2025, time.March, 3), "50"),
	})
	tot := finance.Totals(lines)
	assertDec(t, "150", tot.TotalIn)
	assertDec(t, "30", tot.TotalOut)
	assertDec(t, "120", tot.Balance)

	empty := finance.Totals(nil)
	assertDec(t, "0", empty.Balance)
}
