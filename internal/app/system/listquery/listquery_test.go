// internal/app/system/listquery/listquery_test.go
package listquery_test

import (
	"net/http/httptest"
	"testing"

	"github.com/pulseboard/pulseboard/internal/app/system/listquery"
)

func TestLimit(t *testing.T) {
	cases := []struct {
		url  string
		def  int64
		want int64
	}{
		{"/x", 10, 10},
		{"/x?limit=5", 10, 5},
		{"/x?limit=0", 10, 10},
		{"/x?limit=-3", 10, 10},
		{"/x?limit=abc", 10, 10},
		{"/x?limit=250", 0, 250},
	}
	for _, c := range cases {
		r := httptest.NewRequest("GET", c.url, nil)
		if got := listquery.Limit(r, c.def); got != c.want {
			t.Errorf("Limit(%q, %d) = %d, want %d", c.url, c.def, got, c.want)
		}
	}
}

func TestFilter(t *testing.T) {
	params := []listquery.Param{
		{Name: "userId", Field: "user_id", Kind: listquery.String},
		{Name: "isRead", Field: "is_read", Kind: listquery.Bool},
		{Name: "contactId", Field: "contact_id", Kind: listquery.Int},
	}

	r := httptest.NewRequest("GET", "/x?userId=u1&isRead=false&contactId=7", nil)
	filter, err := listquery.Filter(r, params)
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if filter["user_id"] != "u1" {
		t.Errorf("user_id = %v", filter["user_id"])
	}
	if filter["is_read"] != false {
		t.Errorf("is_read = %v", filter["is_read"])
	}
	if filter["contact_id"] != 7 {
		t.Errorf("contact_id = %v", filter["contact_id"])
	}
}

func TestFilter_AbsentParamsSkipped(t *testing.T) {
	params := []listquery.Param{
		{Name: "isRead", Field: "is_read", Kind: listquery.Bool},
	}
	r := httptest.NewRequest("GET", "/x", nil)
	filter, err := listquery.Filter(r, params)
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if len(filter) != 0 {
		t.Fatalf("expected empty filter, got %v", filter)
	}
}

func TestFilter_BadValueIsError(t *testing.T) {
	params := []listquery.Param{
		{Name: "isRead", Field: "is_read", Kind: listquery.Bool},
	}
	r := httptest.NewRequest("GET", "/x?isRead=banana", nil)
	if _, err := listquery.Filter(r, params); err == nil {
		t.Fatal("expected error for unparseable bool")
	}

	params = []listquery.Param{
		{Name: "contactId", Field: "contact_id", Kind: listquery.Int},
	}
	r = httptest.NewRequest("GET", "/x?contactId=x1", nil)
	if _, err := listquery.Filter(r, params); err == nil {
		t.Fatal("expected error for unparseable int")
	}
}

func TestFilter_UndeclaredParamsIgnored(t *testing.T) {
	params := []listquery.Param{
		{Name: "status", Field: "status", Kind: listquery.String},
	}
	r := httptest.NewRequest("GET", "/x?status=online&bogus=1", nil)
	filter, err := listquery.Filter(r, params)
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if len(filter) != 1 || filter["status"] != "online" {
		t.Fatalf("unexpected filter: %v", filter)
	}
}
