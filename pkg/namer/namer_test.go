package namer

import (
	"reflect"
	"testing"
)

func TestTypeIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"User", "User"},
		{"user", "User"},
		{"user_profile", "UserProfile"},
		{"user-profile", "UserProfile"},
		{"userProfile", "UserProfile"},
		{"2fa_code", "_2faCode"},
		{"_private", "Private"},
		{"API_response", "APIResponse"},
		{"order__item", "OrderItem"},
		{"cobrança", "Cobranca"},
	}

	n := New()
	for _, test := range tests {
		result := n.TypeIdentifier(test.input)
		if result != test.expected {
			t.Errorf("TypeIdentifier(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestTypeIdentifierMemoized(t *testing.T) {
	n := New()
	first := n.TypeIdentifier("user_profile")
	second := n.TypeIdentifier("user_profile")
	if first != second {
		t.Fatalf("repeated TypeIdentifier differs: %q vs %q", first, second)
	}
	if len(n.typeIDs) != 1 {
		t.Errorf("expected one cache entry, got %d", len(n.typeIDs))
	}
}

func TestPropertyIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"name", "name"},
		{"_name", "_name"},
		{"$ref", "$ref"},
		{"name2", "name2"},
		{"created-at", "'created-at'"},
		{"content type", "'content type'"},
		{"2fa", "'2fa'"},
		{"'already-quoted'", "'already-quoted'"},
		{`"double-quoted"`, "'double-quoted'"},
		{"'plain'", "plain"},
	}

	n := New()
	for _, test := range tests {
		result := n.PropertyIdentifier(test.input)
		if result != test.expected {
			t.Errorf("PropertyIdentifier(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestMethodIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"getUser", "getUser"},
		{"GetUser", "getUser"},
		{"get_user", "getUser"},
		{"get-user-by-id", "getUserById"},
		{"get__user", "getUser"},
		{"  get user  ", "getUser"},
		{"get123Numbers456", "get123Numbers456"},
		{"get_/users/{id}", "getUsersId"},
		{"UserController_findAll", "userControllerFindAll"},
	}

	n := New()
	for _, test := range tests {
		result := n.MethodIdentifier(test.input)
		if result != test.expected {
			t.Errorf("MethodIdentifier(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestNamespacePath(t *testing.T) {
	tests := []struct {
		input    string
		segments []string
		method   string
	}{
		{"getResources", nil, "getResources"},
		{"api/v1/getResources", []string{"api", "v1"}, "getResources"},
		{"api.v1.getResources", []string{"api", "v1"}, "getResources"},
		{"get123Numbers456", nil, "get123Numbers456"},
		{"Users.get-by-id", []string{"Users"}, "getById"},
		{"get_/users/{id}", nil, "getUsersId"},
		{"api/get-resources", []string{"api"}, "getResources"},
		{"v2/admin.users/list", []string{"v2"}, "adminUsersList"},
	}

	n := New()
	for _, test := range tests {
		segments, method := n.NamespacePath(test.input)
		if !reflect.DeepEqual(segments, test.segments) || method != test.method {
			t.Errorf("NamespacePath(%q) = (%v, %q), expected (%v, %q)",
				test.input, segments, method, test.segments, test.method)
		}
	}
}

func TestNamespacePathCached(t *testing.T) {
	n := New()
	segA, methodA := n.NamespacePath("api/v1/getResources")
	segB, methodB := n.NamespacePath("api/v1/getResources")
	if methodA != methodB {
		t.Fatalf("repeated NamespacePath method differs: %q vs %q", methodA, methodB)
	}
	if len(segA) == 0 || &segA[0] != &segB[0] {
		t.Errorf("expected the cached segment slice to be returned on repeat calls")
	}
}
