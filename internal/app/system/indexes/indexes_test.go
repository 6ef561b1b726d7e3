// internal/app/system/indexes/indexes_test.go
package indexes_test

import (
	"testing"

	"github.com/pulseboard/pulseboard/internal/app/system/indexes"
	"github.com/pulseboard/pulseboard/internal/testutil"
)

func TestEnsureAll_IsIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("first EnsureAll failed: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("second EnsureAll failed: %v", err)
	}

	cur, err := db.Collection("geo_stats").Indexes().List(ctx)
	if err != nil {
		t.Fatalf("list indexes: %v", err)
	}
	var specs []struct {
		Name   string `bson:"name"`
		Unique bool   `bson:"unique"`
	}
	if err := cur.All(ctx, &specs); err != nil {
		t.Fatalf("decode indexes: %v", err)
	}
	found := false
	for _, s := range specs {
		if s.Name == "uniq_geo_country_code" && s.Unique {
			found = true
		}
	}
	if !found {
		t.Fatalf("unique country-code index missing: %+v", specs)
	}
}
