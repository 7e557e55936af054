package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/taxdoc-finalizer/internal/types"
)

func paystub(filename, employee, employer, start, end, ytd string) types.CanonicalRecord {
	return types.CanonicalRecord{
		DocumentType:       string(types.KindPaystub),
		Filename:           filename,
		EmployeeName:       employee,
		EmployerName:       employer,
		PayPeriodStartDate: start,
		PayPeriodEndDate:   end,
		YearToDateEarnings: ytd,
		Status:             types.StatusOriginal,
	}
}

func TestGroupingKey(t *testing.T) {
	a := paystub("a.json", "John Doe", "Acme Corp", "08/01/2025", "08/15/2025", "54321.00")
	b := paystub("b.json", "John Doe", "Acme Corp", "08/01/2025", "08/15/2025", "54321.00")
	c := paystub("c.json", "Jane Roe", "Acme Corp", "08/01/2025", "08/15/2025", "54321.00")

	assert.Equal(t, GroupingKey(&a, types.KindPaystub), GroupingKey(&b, types.KindPaystub),
		"filename is not part of the identity")
	assert.NotEqual(t, GroupingKey(&a, types.KindPaystub), GroupingKey(&c, types.KindPaystub))

	// Blank identity fields collapse to the sentinel, so two records missing
	// the same field still group together.
	d := paystub("d.json", "John Doe", "", "08/01/2025", "08/15/2025", "54321.00")
	e := paystub("e.json", "John Doe", "N/A", "08/01/2025", "08/15/2025", "54321.00")
	assert.Equal(t, GroupingKey(&d, types.KindPaystub), GroupingKey(&e, types.KindPaystub))
}

func TestAssignStatusSmallestFilenameIsOriginal(t *testing.T) {
	records := []types.CanonicalRecord{
		paystub("b.json", "John Doe", "Acme Corp", "08/01/2025", "08/15/2025", "54321.00"),
		paystub("a.json", "John Doe", "Acme Corp", "08/01/2025", "08/15/2025", "54321.00"),
	}

	out := AssignStatus(records, types.KindPaystub)
	require.Len(t, out, 2)

	assert.Equal(t, "a.json", out[0].Filename)
	assert.Equal(t, types.StatusOriginal, out[0].Status)
	assert.Equal(t, "b.json", out[1].Filename)
	assert.Equal(t, types.StatusDuplicate, out[1].Status)
}

func TestAssignStatusExactlyOneOriginalPerCluster(t *testing.T) {
	records := []types.CanonicalRecord{
		paystub("c.json", "John Doe", "Acme Corp", "08/01/2025", "08/15/2025", "54321.00"),
		paystub("a.json", "John Doe", "Acme Corp", "08/01/2025", "08/15/2025", "54321.00"),
		paystub("b.json", "John Doe", "Acme Corp", "08/01/2025", "08/15/2025", "54321.00"),
		paystub("z.json", "Jane Roe", "Globex", "07/01/2025", "07/15/2025", "1000.00"),
	}

	out := AssignStatus(records, types.KindPaystub)
	require.Len(t, out, 4)

	originals := 0
	for _, rec := range out[:3] {
		if rec.Status == types.StatusOriginal {
			originals++
			assert.Equal(t, "a.json", rec.Filename)
		}
	}
	assert.Equal(t, 1, originals, "exactly one original per cluster")
	assert.Equal(t, types.StatusOriginal, out[3].Status, "singleton cluster keeps its record original")
}

func TestAssignStatusClusterOrderIsFirstEncounter(t *testing.T) {
	records := []types.CanonicalRecord{
		paystub("x.json", "John Doe", "Acme Corp", "08/01/2025", "08/15/2025", "54321.00"),
		paystub("a.json", "Jane Roe", "Globex", "07/01/2025", "07/15/2025", "1000.00"),
		paystub("w.json", "John Doe", "Acme Corp", "08/01/2025", "08/15/2025", "54321.00"),
	}

	out := AssignStatus(records, types.KindPaystub)
	require.Len(t, out, 3)

	// The John Doe cluster was encountered first, so both its members come
	// before the Jane Roe singleton, sorted by filename within the cluster.
	assert.Equal(t, []string{"w.json", "x.json", "a.json"},
		[]string{out[0].Filename, out[1].Filename, out[2].Filename})
	assert.Equal(t, types.StatusOriginal, out[0].Status)
	assert.Equal(t, types.StatusDuplicate, out[1].Status)
	assert.Equal(t, types.StatusOriginal, out[2].Status)
}

func TestAssignStatusDeterministic(t *testing.T) {
	records := []types.CanonicalRecord{
		paystub("b.json", "John Doe", "Acme Corp", "08/01/2025", "08/15/2025", "54321.00"),
		paystub("a.json", "John Doe", "Acme Corp", "08/01/2025", "08/15/2025", "54321.00"),
		paystub("c.json", "Jane Roe", "Globex", "07/01/2025", "07/15/2025", "1000.00"),
	}

	first := AssignStatus(records, types.KindPaystub)
	second := AssignStatus(records, types.KindPaystub)
	assert.Equal(t, first, second)
}

func TestAssignStatusEmpty(t *testing.T) {
	out := AssignStatus(nil, types.KindW2)
	assert.Empty(t, out)
}
