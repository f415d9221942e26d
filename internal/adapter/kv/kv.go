// Package kv defines a partition/sort-key item store.
//
// Items live under a Key made of a partition key (PK) and a sort key (SK).
// Queries range over a single partition in sort-key lexical order. Every
// backend gives per-item atomicity for conditional writes and nothing more.
package kv

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrItemNotFound is returned by Get when no item exists under the key.
	ErrItemNotFound = errors.New("kv: item not found")
	// ErrConditionFailed is returned when a write condition does not hold.
	ErrConditionFailed = errors.New("kv: condition failed")
	// ErrUnavailable wraps connectivity, throttling and capacity failures.
	ErrUnavailable = errors.New("kv: backend unavailable")
	// ErrInvalidAttribute is returned for attribute names that are not plain identifiers.
	ErrInvalidAttribute = errors.New("kv: invalid attribute name")
)

// Reserved attribute names. They hold the key and cannot be written as attributes.
const (
	AttrPK = "pk"
	AttrSK = "sk"
)

// Key addresses a single item.
type Key struct {
	PK string `json:"pk"`
	SK string `json:"sk"`
}

// Item is a stored record. Attribute values are strings, int64 numbers or
// string lists; backends may hand them back in an equivalent encoding, so
// read them through the typed accessors.
type Item struct {
	Key   Key
	Attrs map[string]any
}

// Condition guards a write.
type Condition struct {
	MustExist    bool
	MustNotExist bool
	// AttrEquals requires the stored attribute to equal Value. It implies MustExist.
	AttrEquals *AttrEquals
}

// AttrEquals is an attribute equality check.
type AttrEquals struct {
	Name  string
	Value any
}

// Update is a partial write of an existing item.
// A missing item always fails with ErrConditionFailed.
type Update struct {
	Set       map[string]any
	Add       map[string]int64
	Condition Condition
}

// Query is a forward range over one partition.
type Query struct {
	PK       string
	SKPrefix string
	Limit    int
	// StartAfter is the exclusive start key, taken from a previous Page.LastKey.
	StartAfter *Key
}

// Page is one query result page. LastKey is nil when the backend knows
// there are no further items.
type Page struct {
	Items   []Item
	LastKey *Key
}

// Backend is implemented by memory, postgres and dynamo.
type Backend interface {
	Put(ctx context.Context, item Item, cond Condition) error
	Get(ctx context.Context, key Key) (Item, error)
	Query(ctx context.Context, q Query) (Page, error)
	Update(ctx context.Context, key Key, u Update) (Item, error)
	Delete(ctx context.Context, key Key) error
	Ping(ctx context.Context) error
}

var attrNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{0,63}$`)

// ValidateAttrName rejects anything that is not a plain identifier or that
// collides with the key attributes.
func ValidateAttrName(name string) error {
	if !attrNameRe.MatchString(name) || name == AttrPK || name == AttrSK {
		return fmt.Errorf("%w: %q", ErrInvalidAttribute, name)
	}
	return nil
}

// Validate checks attribute names in the update and rejects a condition
// that can never hold for an update.
func (u Update) Validate() error {
	if u.Condition.MustNotExist {
		return fmt.Errorf("kv: update cannot require a missing item")
	}
	for name := range u.Set {
		if err := ValidateAttrName(name); err != nil {
			return err
		}
	}
	for name := range u.Add {
		if err := ValidateAttrName(name); err != nil {
			return err
		}
		if _, ok := u.Set[name]; ok {
			return fmt.Errorf("kv: attribute %q is both set and added", name)
		}
	}
	if ae := u.Condition.AttrEquals; ae != nil {
		if err := ValidateAttrName(ae.Name); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the condition for a put.
func (c Condition) Validate() error {
	if c.MustNotExist && (c.MustExist || c.AttrEquals != nil) {
		return fmt.Errorf("kv: contradictory condition")
	}
	if c.AttrEquals != nil {
		return ValidateAttrName(c.AttrEquals.Name)
	}
	return nil
}

// Validate checks the attribute names of an item.
func (it Item) Validate() error {
	if it.Key.PK == "" || it.Key.SK == "" {
		return fmt.Errorf("kv: empty key")
	}
	for name := range it.Attrs {
		if err := ValidateAttrName(name); err != nil {
			return err
		}
	}
	return nil
}
