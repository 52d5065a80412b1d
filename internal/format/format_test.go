package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestValue(t *testing.T) {
	assert.Equal(t, "-", Value(""))
	assert.Equal(t, "HT-2025-001", Value("HT-2025-001"))
	assert.Equal(t, "-", Int(nil))
	assert.Equal(t, "0", Int(ptr(0)))
	assert.Equal(t, "-", Number(nil))
	assert.Equal(t, "12.5", Number(ptr(12.5)))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "-", Percent(nil))
	assert.Equal(t, "0%", Percent(ptr(0.0)))
	assert.Equal(t, "30%", Percent(ptr(30.0)))
	assert.Equal(t, "2.5%", Percent(ptr(2.5)))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "-", Date(""))
	assert.Equal(t, "2025-09-20", Date("2025-09-20"))
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in   *float64
		want string
	}{
		{nil, "-"},
		{ptr(1234.5), "1,234.50"},
		{ptr(0.0), "0.00"},
		{ptr(999.0), "999.00"},
		{ptr(9999999.99), "9,999,999.99"},
		{ptr(1000000.0), "1,000,000.00"},
		{ptr(-1234.567), "-1,234.57"},
		{ptr(0.125), "0.13"},
		{ptr(999.995), "1,000.00"},
		{ptr(999999.996), "1,000,000.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Amount(tt.in))
	}
}

func TestFixed(t *testing.T) {
	assert.Equal(t, "1.00000", Fixed(1, 5))
	assert.Equal(t, "2.35", Fixed(2.345, 2), "2.345 is stored just above the tie")
	assert.Equal(t, "1.00", Fixed(1.005, 2), "1.005 is stored just below the tie")
	assert.Equal(t, "3", Fixed(2.5, 0))
	assert.Equal(t, "-3", Fixed(-2.5, 0))
	assert.Equal(t, "10.000", Fixed(9.9996, 3))
	assert.Equal(t, "", FixedPtr(nil, 2))
	assert.Equal(t, "12.3457", FixedPtr(ptr(12.34567), 4))
}

func TestDateTimeIn(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*3600)
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "-"},
		{"iso local", "2025-09-20T14:00:00", "09-20 14:00"},
		{"space separated", "2025-09-20 14:00:00", "09-20 14:00"},
		{"minutes only", "2025-01-05 08:07", "01-05 08:07"},
		{"utc converted", "2025-09-20T06:00:00Z", "09-20 14:00"},
		{"offset converted", "2025-09-20T14:00:00+08:00", "09-20 14:00"},
		{"bare date is utc midnight", "2025-09-20", "09-20 08:00"},
		{"slashes", "2025/09/20 14:00:00", "09-20 14:00"},
		{"garbage passes through", "not a date", "not a date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateTimeIn(tt.in, shanghai))
		})
	}
}

func TestContractTypePredicates(t *testing.T) {
	for _, ct := range []int{0, 3} {
		assert.True(t, IsVCOrFreightContract(ptr(ct)))
		assert.False(t, IsTCOrTCTContract(ptr(ct)))
	}
	for _, ct := range []int{1, 2} {
		assert.True(t, IsTCOrTCTContract(ptr(ct)))
		assert.False(t, IsVCOrFreightContract(ptr(ct)))
	}
	assert.False(t, IsVCOrFreightContract(ptr(4)))
	assert.False(t, IsTCOrTCTContract(ptr(4)))
	assert.False(t, IsVCOrFreightContract(nil))
	assert.False(t, IsTCOrTCTContract(nil))
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "是", YesNo(ptr(1)))
	assert.Equal(t, "否", YesNo(ptr(0)))
	assert.Equal(t, "-", YesNo(ptr(2)))
	assert.Equal(t, "-", YesNo(nil))
}

func TestFirst(t *testing.T) {
	assert.Equal(t, "b", First("", "b", "c"))
	assert.Equal(t, "", First("", ""))
}
