package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiforge/clientgen/pkg/schema"
)

func TestDescribeNothingApplies(t *testing.T) {
	assert.Nil(t, Describe(nil, ""))
	assert.Nil(t, Describe(&schema.Node{Kind: schema.KindRef, Ref: "User"}, ""))
}

func TestDescribeSummaryFallback(t *testing.T) {
	node := &schema.Node{Kind: schema.KindRef, Ref: "User"}
	doc := Describe(node, "owner")
	require.NotNil(t, doc)
	assert.Equal(t, "owner property", doc.Summary)
	assert.Empty(t, doc.Constraints)
}

func TestDescribeDeclaredDescriptionSuppressesTypeTag(t *testing.T) {
	node := &schema.Node{Kind: schema.KindPrimitive, Primitive: "string", Description: "a name"}
	doc := Describe(node, "ignored")
	require.NotNil(t, doc)
	assert.Equal(t, "a name", doc.Summary)
	assert.Empty(t, doc.Constraints)
}

func TestDescribeConstraintOrder(t *testing.T) {
	min := 1.0
	max := 10.0
	minLen := uint64(2)
	maxLen := uint64(8)
	node := &schema.Node{
		Kind:      schema.KindPrimitive,
		Primitive: "string",
		Default:   "x",
		Example:   "y",
		Format:    "uuid",
		Min:       &min,
		Max:       &max,
		MinLength: &minLen,
		MaxLength: &maxLen,
		Pattern:   "^[a-z]+$",
		Nullable:  true,
		ReadOnly:  true,
		WriteOnly: true,
	}
	doc := Describe(node, "")
	require.NotNil(t, doc)
	assert.Equal(t, []string{
		"Type: string",
		"Default: x",
		"Example: y",
		"Format: uuid",
		"Minimum: 1",
		"Maximum: 10",
		"Min length: 2",
		"Max length: 8",
		"Pattern: ^[a-z]+$",
		"Nullable: true",
		"Read-only: true",
		"Write-only: true",
	}, doc.Constraints)
}

func TestDescribeEnumAndConst(t *testing.T) {
	doc := Describe(&schema.Node{Kind: schema.KindEnum, Primitive: "string", Enum: []any{"a", "b"}}, "")
	require.NotNil(t, doc)
	assert.Equal(t, []string{"Type: string", "Allowed values: a, b"}, doc.Constraints)

	doc = Describe(&schema.Node{Kind: schema.KindConst, Const: 42}, "")
	require.NotNil(t, doc)
	assert.Equal(t, []string{"Constant: 42"}, doc.Constraints)
}

func TestDescribeArrayBounds(t *testing.T) {
	minItems := uint64(1)
	maxItems := uint64(5)
	doc := Describe(&schema.Node{Kind: schema.KindArray, MinItems: &minItems, MaxItems: &maxItems}, "")
	require.NotNil(t, doc)
	assert.Equal(t, []string{"Type: array", "Min items: 1", "Max items: 5"}, doc.Constraints)
}
