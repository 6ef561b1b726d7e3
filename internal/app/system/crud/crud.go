// internal/app/system/crud/crud.go

// Package crud turns a resource store binding into the HTTP controller
// surface every entity shares: list with filter/sort/limit, get by id,
// validated create, partial update, delete, and natural-key upsert. Feature
// packages instantiate one controller per resource and mount its methods.
package crud

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/go-chi/chi/v5"
	"github.com/pulseboard/pulseboard/internal/app/store/resource"
	"github.com/pulseboard/pulseboard/internal/app/system/listquery"
	"github.com/pulseboard/pulseboard/internal/app/system/schema"
	"github.com/pulseboard/pulseboard/internal/app/system/timeouts"
	"github.com/pulseboard/pulseboard/internal/app/system/webapi"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Binding describes one resource: its store, how lists are sorted and
// filtered, and the hooks that cover entity-specific creation defaults and
// enum guards on partial updates.
type Binding[T any, PT interface {
	resource.Record
	*T
}] struct {
	// Singular and Plural name the resource in error messages
	// ("analytics stat" / "analytics stats").
	Singular string
	Plural   string

	Store *resource.Store[T, PT]

	// Sort is the entity's fixed default order for lists.
	Sort bson.D
	// Filters are the query parameters a list accepts.
	Filters []listquery.Param
	// DefaultLimit truncates lists when the request names no limit; 0 means
	// unlimited.
	DefaultLimit int64

	// OnCreate runs after decoding and before validation, with the raw body
	// keys, so absent fields can receive non-zero defaults.
	OnCreate func(doc PT, raw map[string]json.RawMessage)
}

// Controller serves the HTTP surface for one bound resource.
type Controller[T any, PT interface {
	resource.Record
	*T
}] struct {
	b      Binding[T, PT]
	log    *zap.Logger
	fields map[string]field // wire name -> struct/bson field
}

// field pairs a struct field's Go name with its bson name.
type field struct {
	goName   string
	bsonName string
}

// New builds a controller for the binding.
func New[T any, PT interface {
	resource.Record
	*T
}](b Binding[T, PT], log *zap.Logger) *Controller[T, PT] {
	return &Controller[T, PT]{b: b, log: log, fields: fieldMap[T]()}
}

// fieldMap derives the wire-name to field mapping from T's struct tags.
// Meta fields are excluded; they are store-controlled.
func fieldMap[T any]() map[string]field {
	m := map[string]field{}
	t := reflect.TypeOf(*new(T))
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			continue
		}
		jsonName := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		bsonName := strings.SplitN(f.Tag.Get("bson"), ",", 2)[0]
		if jsonName == "" || jsonName == "-" || bsonName == "" || bsonName == "-" {
			continue
		}
		m[jsonName] = field{goName: f.Name, bsonName: bsonName}
	}
	return m
}

// List handles GET /{R}: optional declared filters plus limit, fixed sort.
// No match is an empty array, never a 404.
func (c *Controller[T, PT]) List(w http.ResponseWriter, r *http.Request) {
	filter, err := listquery.Filter(r, c.b.Filters)
	if err != nil {
		webapi.BadRequest(w, "Invalid query parameters", err)
		return
	}
	limit := listquery.Limit(r, c.b.DefaultLimit)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := c.b.Store.Find(ctx, filter, c.b.Sort, limit)
	if err != nil {
		webapi.Fail(w, c.log, err, "Error fetching "+c.b.Plural)
		return
	}
	webapi.JSON(w, http.StatusOK, docs)
}

// Get handles GET /{R}/{id}.
func (c *Controller[T, PT]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := c.objectID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	doc, err := c.b.Store.GetByID(ctx, id)
	if err != nil {
		webapi.Fail(w, c.log, err, c.b.Singular+" not found")
		return
	}
	webapi.JSON(w, http.StatusOK, doc)
}

// Create handles POST /{R}: decode, default, validate, persist. A failed
// validation persists nothing.
func (c *Controller[T, PT]) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		webapi.BadRequest(w, "Error reading request body", err)
		return
	}

	doc := PT(new(T))
	if err := json.Unmarshal(body, doc); err != nil {
		webapi.BadRequest(w, "Invalid JSON body", err)
		return
	}
	if c.b.OnCreate != nil {
		raw := map[string]json.RawMessage{}
		_ = json.Unmarshal(body, &raw)
		c.b.OnCreate(doc, raw)
	}
	if err := schema.Validate(doc); err != nil {
		webapi.Fail(w, c.log, err, "Error creating "+c.b.Singular)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := c.b.Store.Create(ctx, doc); err != nil {
		if wafflemongo.IsDup(err) {
			webapi.BadRequest(w, "Error creating "+c.b.Singular+": duplicate value for a unique field", err)
			return
		}
		webapi.Fail(w, c.log, err, "Error creating "+c.b.Singular)
		return
	}
	webapi.JSON(w, http.StatusCreated, doc)
}

// Update handles PUT /{R}/{id}: a partial merge. Only the top-level keys
// present in the body are written; everything else is left untouched.
// Required-field validation is deliberately not rerun on partial payloads,
// but enumerated fields named in PatchChecks are still guarded.
func (c *Controller[T, PT]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := c.objectID(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		webapi.BadRequest(w, "Error reading request body", err)
		return
	}

	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &raw); err != nil {
		webapi.BadRequest(w, "Invalid JSON body", err)
		return
	}
	set, verr := c.patchSet(body, raw)
	if verr != nil {
		webapi.Fail(w, c.log, verr, "Error updating "+c.b.Singular)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	doc, err := c.b.Store.UpdateByID(ctx, id, set)
	if err != nil {
		if wafflemongo.IsDup(err) {
			webapi.BadRequest(w, "Error updating "+c.b.Singular+": duplicate value for a unique field", err)
			return
		}
		webapi.Fail(w, c.log, err, c.b.Singular+" not found")
		return
	}
	webapi.JSON(w, http.StatusOK, doc)
}

// patchSet converts the present body keys into a bson $set map, routing the
// values through T so nested structures land in their stored shape. Present
// fields are validated individually; absent ones skip their constraints.
func (c *Controller[T, PT]) patchSet(body []byte, raw map[string]json.RawMessage) (bson.M, error) {
	var doc T
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &webapi.ValidationError{Fields: []string{"body"}}
	}

	var present []string
	for wire := range raw {
		if f, ok := c.fields[wire]; ok {
			present = append(present, f.goName)
		}
	}
	if err := schema.ValidatePartial(&doc, present...); err != nil {
		return nil, err
	}

	flat, err := resource.Flatten(&doc)
	if err != nil {
		return nil, err
	}
	set := bson.M{}
	for wire, f := range c.fields {
		if _, ok := raw[wire]; !ok {
			continue
		}
		if v, ok := flat[f.bsonName]; ok {
			set[f.bsonName] = v
		}
	}
	return set, nil
}

// Delete handles DELETE /{R}/{id}.
func (c *Controller[T, PT]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := c.objectID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := c.b.Store.DeleteByID(ctx, id); err != nil {
		webapi.Fail(w, c.log, err, c.b.Singular+" not found")
		return
	}
	webapi.Message(w, http.StatusOK, strings.ToUpper(c.b.Singular[:1])+c.b.Singular[1:]+" deleted successfully")
}

// Upsert returns a POST handler that creates or updates by the given natural
// key fields (bson names). The created branch answers 201, the updated
// branch 200, so callers can tell which path was taken.
func (c *Controller[T, PT]) Upsert(keyFields ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := PT(new(T))
		if err := webapi.Decode(r, doc); err != nil {
			webapi.BadRequest(w, "Invalid JSON body", err)
			return
		}
		if err := schema.Validate(doc); err != nil {
			webapi.Fail(w, c.log, err, "Error saving "+c.b.Singular)
			return
		}

		flat, err := resource.Flatten(doc)
		if err != nil {
			webapi.Fail(w, c.log, err, "Error saving "+c.b.Singular)
			return
		}
		key := bson.M{}
		for _, f := range keyFields {
			key[f] = flat[f]
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
		defer cancel()

		out, created, err := c.b.Store.UpsertByKey(ctx, key, doc)
		if err != nil {
			webapi.Fail(w, c.log, err, "Error saving "+c.b.Singular)
			return
		}
		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		webapi.JSON(w, status, out)
	}
}

// PatchBool returns a PATCH handler that reads a single boolean from the
// body ({"isRead": true}) and writes it to the given field.
func (c *Controller[T, PT]) PatchBool(wire, field, what string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := c.objectID(w, r)
		if !ok {
			return
		}
		var body map[string]json.RawMessage
		if err := webapi.Decode(r, &body); err != nil {
			webapi.BadRequest(w, "Invalid JSON body", err)
			return
		}
		var val bool
		if rv, ok := body[wire]; ok {
			if err := json.Unmarshal(rv, &val); err != nil {
				webapi.BadRequest(w, "Error updating "+what, err)
				return
			}
		}
		c.setField(w, r, id, field, val, what)
	}
}

// PatchEnum returns a PATCH handler that reads a single enumerated string
// from the body and writes it after the validity check.
func (c *Controller[T, PT]) PatchEnum(wire, field string, check func(string) bool, what string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := c.objectID(w, r)
		if !ok {
			return
		}
		var body map[string]json.RawMessage
		if err := webapi.Decode(r, &body); err != nil {
			webapi.BadRequest(w, "Invalid JSON body", err)
			return
		}
		var val string
		if rv, ok := body[wire]; ok {
			_ = json.Unmarshal(rv, &val)
		}
		if !check(val) {
			webapi.Fail(w, c.log, &webapi.ValidationError{Fields: []string{wire}}, "Error updating "+what)
			return
		}
		c.setField(w, r, id, field, val, what)
	}
}

// PatchConst returns a PATCH handler that writes a fixed value, e.g.
// marking a notification read without a body.
func (c *Controller[T, PT]) PatchConst(field string, value any, what string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := c.objectID(w, r)
		if !ok {
			return
		}
		c.setField(w, r, id, field, value, what)
	}
}

func (c *Controller[T, PT]) setField(w http.ResponseWriter, r *http.Request, id primitive.ObjectID, field string, value any, what string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	doc, err := c.b.Store.UpdateByID(ctx, id, bson.M{field: value})
	if err != nil {
		webapi.Fail(w, c.log, err, c.b.Singular+" not found")
		return
	}
	webapi.JSON(w, http.StatusOK, doc)
}

// objectID parses the {id} path parameter. An unparseable id can never
// match a record, so it reports the same 404 a missing record does.
func (c *Controller[T, PT]) objectID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		webapi.NotFound(w, c.b.Singular+" not found")
		return primitive.NilObjectID, false
	}
	return id, true
}
