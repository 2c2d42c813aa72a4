package utils

import "testing"

type payload struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestUnmarshalLenientValidJSON(t *testing.T) {
	var out payload
	if err := UnmarshalLenient([]byte(`{"name":"John","age":30}`), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Name != "John" || out.Age != 30 {
		t.Errorf("unexpected result: %+v", out)
	}
}

func TestUnmarshalLenientRepairsSloppyJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"single quotes", `{'name': 'John', 'age': 30}`},
		{"unquoted keys", `{name: "John", age: 30}`},
		{"trailing comma", `{"name": "John", "age": 30,}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out payload
			if err := UnmarshalLenient([]byte(tt.data), &out); err != nil {
				t.Fatalf("expected repair to succeed, got %v", err)
			}
			if out.Name != "John" || out.Age != 30 {
				t.Errorf("unexpected result: %+v", out)
			}
		})
	}
}

func TestUnmarshalLenientRejectsGarbage(t *testing.T) {
	var out payload
	if err := UnmarshalLenient([]byte(`<html>502 Bad Gateway</html>`), &out); err == nil {
		t.Error("expected an error for non-JSON input")
	}
}
