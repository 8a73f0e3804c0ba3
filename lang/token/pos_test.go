package token

import "testing"

func TestPosValid(t *testing.T) {
	if NoPos.Valid() {
		t.Error("NoPos should not be valid")
	}
	if !Pos(1).Valid() {
		t.Error("Pos(1) should be valid")
	}
	if Pos(3).Line() != 3 {
		t.Errorf("want line 3, got %d", Pos(3).Line())
	}
}
