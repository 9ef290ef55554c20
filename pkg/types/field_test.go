package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{name: "plain name", value: "Alice"},
		{name: "name with spaces", value: "Alice Smith"},
		{name: "unicode name", value: "Андрій"},
		{name: "empty rejected", value: "", wantErr: ErrEmptyName},
		{name: "whitespace only rejected", value: "   ", wantErr: ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewName(tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, n.String(), "name is stored as-is")
		})
	}
}

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "ten digits", value: "0501234567"},
		{name: "all zeros", value: "0000000000"},
		{name: "all nines", value: "9999999999"},
		{name: "too short", value: "12345", wantErr: true},
		{name: "too long", value: "05012345678", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "letter inside", value: "05012a4567", wantErr: true},
		{name: "dashes", value: "050-123-45", wantErr: true},
		{name: "leading plus", value: "+380501234", wantErr: true},
		{name: "unicode digits rejected", value: "٠١٢٣٤٥٦٧٨٩", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhone(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPhone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, p.String())
		})
	}
}

func TestNewPhoneErrorCarriesValue(t *testing.T) {
	_, err := NewPhone("12345")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "12345", "error should name the rejected value")
	assert.Contains(t, err.Error(), "10", "error should name the expected length")
}

func TestNewBirthday(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "regular date", value: "15.03.1990"},
		{name: "first of january", value: "01.01.2000"},
		{name: "end of december", value: "31.12.1985"},
		{name: "leap day in leap year", value: "29.02.2000"},
		{name: "wrong separator", value: "15-03-1990", wantErr: true},
		{name: "iso order", value: "1990.03.15", wantErr: true},
		{name: "month day swapped out of range", value: "03.15.1990", wantErr: true},
		{name: "missing zero padding", value: "5.3.1990", wantErr: true},
		{name: "two digit year", value: "15.03.90", wantErr: true},
		{name: "day out of range", value: "32.01.2000", wantErr: true},
		{name: "nonexistent date", value: "31.02.2024", wantErr: true},
		{name: "leap day in non-leap year", value: "29.02.1990", wantErr: true},
		{name: "trailing garbage", value: "15.03.1990x", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBirthday(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBirthday)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, b.String(), "String should round-trip the accepted input")
		})
	}
}

func TestBirthdayNextOccurrence(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		birthday string
		today    time.Time
		want     time.Time
	}{
		{
			name:     "later this year",
			birthday: "15.03.1990",
			today:    date(2024, time.March, 10),
			want:     date(2024, time.March, 15),
		},
		{
			name:     "already passed rolls to next year",
			birthday: "15.03.1990",
			today:    date(2024, time.March, 20),
			want:     date(2025, time.March, 15),
		},
		{
			name:     "today counts as today",
			birthday: "15.03.1990",
			today:    date(2024, time.March, 15),
			want:     date(2024, time.March, 15),
		},
		{
			name:     "leap day in leap year stays on the 29th",
			birthday: "29.02.2000",
			today:    date(2024, time.February, 1),
			want:     date(2024, time.February, 29),
		},
		{
			name:     "leap day in non-leap year resolves to march 1",
			birthday: "29.02.2000",
			today:    date(2023, time.February, 1),
			want:     date(2023, time.March, 1),
		},
		{
			name:     "leap day passed in non-leap year rolls into leap year",
			birthday: "29.02.2000",
			today:    date(2023, time.June, 1),
			want:     date(2024, time.February, 29),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBirthday(tt.birthday)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.NextOccurrence(tt.today))
		})
	}
}

func TestBirthdayDaysUntil(t *testing.T) {
	b, err := NewBirthday("15.03.1990")
	require.NoError(t, err)

	today := time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, 5, b.DaysUntil(today), "time of day must not affect the whole-day gap")

	onTheDay := time.Date(2024, time.March, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 0, b.DaysUntil(onTheDay))
}
