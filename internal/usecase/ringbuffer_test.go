package usecase

import (
	"testing"
)

func TestRingBuffer_New(t *testing.T) {
	rb := NewRingBuffer[string](10)

	if rb.Len() != 0 {
		t.Errorf("Expected empty buffer, got %d elements", rb.Len())
	}

	if rb.cap != 10 {
		t.Errorf("Expected capacity 10, got %d", rb.cap)
	}
}

func TestRingBuffer_AddAndGetAll(t *testing.T) {
	rb := NewRingBuffer[string](5)

	rb.Add("msg1")
	rb.Add("msg2")
	rb.Add("msg3")

	if rb.Len() != 3 {
		t.Fatalf("Expected 3 elements, got %d", rb.Len())
	}

	all := rb.GetAll()
	if len(all) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(all))
	}

	if all[0] != "msg1" {
		t.Errorf("Expected msg1 first, got %s", all[0])
	}
	if all[2] != "msg3" {
		t.Errorf("Expected msg3 last, got %s", all[2])
	}
}

func TestRingBuffer_Overflow(t *testing.T) {
	rb := NewRingBuffer[string](3)

	rb.Add("msg1")
	rb.Add("msg2")
	rb.Add("msg3")
	rb.Add("msg4") // overwrites msg1
	rb.Add("msg5") // overwrites msg2

	if rb.Len() != 3 {
		t.Fatalf("Expected 3 elements (capped), got %d", rb.Len())
	}

	all := rb.GetAll()
	expected := []string{"msg3", "msg4", "msg5"}
	for i, exp := range expected {
		if all[i] != exp {
			t.Errorf("Position %d: expected %s, got %s", i, exp, all[i])
		}
	}
}

func TestRingBuffer_Unbounded(t *testing.T) {
	rb := NewRingBuffer[int](0)

	for i := 0; i < 1000; i++ {
		rb.Add(i)
	}

	if rb.Len() != 1000 {
		t.Fatalf("Expected 1000 elements, got %d", rb.Len())
	}

	all := rb.GetAll()
	if all[0] != 0 || all[999] != 999 {
		t.Errorf("Expected insertion order preserved, got first=%d last=%d", all[0], all[999])
	}
}

func TestRingBuffer_GetAllReturnsCopy(t *testing.T) {
	rb := NewRingBuffer[string](0)
	rb.Add("original")

	all := rb.GetAll()
	all[0] = "mutated"

	if rb.GetAll()[0] != "original" {
		t.Error("Expected buffer contents to be unaffected by caller mutation")
	}
}

func TestRingBuffer_Empty(t *testing.T) {
	rb := NewRingBuffer[string](5)

	if all := rb.GetAll(); all != nil {
		t.Errorf("Expected nil from empty buffer, got %v", all)
	}
}
