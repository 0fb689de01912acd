package utils

import (
	"net/http"
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestStrDelimitForSum(t *testing.T) {
	type args struct {
		flt      decimal.Decimal
		currency string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "happy flow: enough argument amount & currency",
			args: args{
				flt:      decimal.NewFromInt(5000),
				currency: "vnd",
			},
			want: "5.000 vnd",
		},
		{
			name: "happy flow: have amount but not have currency",
			args: args{
				flt:      decimal.NewFromInt(5000),
				currency: "",
			},
			want: "5.000",
		},
		{
			name: "round to dong",
			args: args{
				flt:      decimal.RequireFromString("1234567.6"),
				currency: CURRENCY_SYMBOL,
			},
			want: "1.234.568 ₫",
		},
		{
			name: "zero",
			args: args{
				flt:      decimal.Zero,
				currency: CURRENCY_SYMBOL,
			},
			want: "0 ₫",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StrDelimitForSum(tt.args.flt, tt.args.currency); got != tt.want {
				t.Errorf("StrDelimitForSum() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrOrPlaceholder(t *testing.T) {
	name := "Lan"
	empty := ""
	tests := []struct {
		name string
		in   *string
		want string
	}{
		{name: "nil", in: nil, want: EMPTY_PLACEHOLDER},
		{name: "empty", in: &empty, want: EMPTY_PLACEHOLDER},
		{name: "value", in: &name, want: "Lan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StrOrPlaceholder(tt.in); got != tt.want {
				t.Errorf("StrOrPlaceholder() = %v, want %v", got, tt.want)
			}
		})
	}
}

func newRequest(headers map[string]string) *http.Request {
	r, _ := http.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	return r
}

func TestCurrentUser(t *testing.T) {
	id := uuid.MustParse("27302455-9327-44ab-bb59-36e9b4ebea21")
	type args struct {
		c *http.Request
	}
	tests := []struct {
		name    string
		args    args
		want    uuid.UUID
		wantErr bool
	}{
		{
			name: "happy flow",
			args: args{c: newRequest(map[string]string{HEADER_USER_ID: id.String()})},
			want: id,
		},
		{
			name: "happy flow: piped header",
			args: args{c: newRequest(map[string]string{HEADER_USER_ID: id.String() + "|64"})},
			want: id,
		},
		{
			name:    "sad flow: missing header",
			args:    args{c: newRequest(nil)},
			want:    uuid.Nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CurrentUser(tt.args.c)
			if (err != nil) != tt.wantErr {
				t.Errorf("CurrentUser() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CurrentUser() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCurrentExporter(t *testing.T) {
	id := uuid.MustParse("a354186a-8b2c-43f9-9ff0-3c404833d5a1")
	tests := []struct {
		name    string
		headers map[string]string
		want    Exporter
		wantErr bool
	}{
		{
			name: "decode name and role",
			headers: map[string]string{
				HEADER_USER_ID:    id.String(),
				HEADER_USER_NAME:  url.QueryEscape("Nguyễn Văn A"),
				HEADER_USER_ROLES: "staff",
			},
			want: Exporter{ID: id, Name: "Nguyễn Văn A", Role: "staff"},
		},
		{
			name:    "fallback to defaults",
			headers: map[string]string{HEADER_USER_ID: id.String()},
			want:    Exporter{ID: id, Name: DEFAULT_EXPORTER_NAME, Role: DEFAULT_EXPORTER_ROLE},
		},
		{
			name:    "no user",
			headers: nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CurrentExporter(newRequest(tt.headers))
			if (err != nil) != tt.wantErr {
				t.Errorf("CurrentExporter() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CurrentExporter() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveDate(t *testing.T) {
	now := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		date    string
		want    string
		wantErr bool
	}{
		{name: "empty means today", date: "", want: "2024-03-09"},
		{name: "explicit", date: "2024-02-29", want: "2024-02-29"},
		{name: "wrong layout", date: "09/03/2024", wantErr: true},
		{name: "impossible day", date: "2023-02-29", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDate(tt.date, now)
			if (err != nil) != tt.wantErr {
				t.Errorf("ResolveDate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ResolveDate() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveMonth(t *testing.T) {
	now := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	type args struct {
		month int
		year  int
	}
	tests := []struct {
		name      string
		args      args
		wantMonth int
		wantYear  int
		wantErr   bool
	}{
		{name: "defaults", args: args{}, wantMonth: 3, wantYear: 2024},
		{name: "explicit", args: args{month: 12, year: 2023}, wantMonth: 12, wantYear: 2023},
		{name: "month 13", args: args{month: 13, year: 2024}, wantErr: true},
		{name: "negative month", args: args{month: -1, year: 2024}, wantErr: true},
		{name: "year too small", args: args{month: 1, year: 1999}, wantErr: true},
		{name: "year too big", args: args{month: 1, year: 2101}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, y, err := ResolveMonth(tt.args.month, tt.args.year, now)
			if (err != nil) != tt.wantErr {
				t.Errorf("ResolveMonth() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if m != tt.wantMonth || y != tt.wantYear {
				t.Errorf("ResolveMonth() got = %d/%d, want %d/%d", m, y, tt.wantMonth, tt.wantYear)
			}
		})
	}
}
