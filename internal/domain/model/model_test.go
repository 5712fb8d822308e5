package model

import "testing"

func TestRewardPatchEmpty(t *testing.T) {
	if !(RewardPatch{}).Empty() {
		t.Fatal("zero patch must be empty")
	}

	name := "movie night"
	price := int64(50)
	stock := int64(0)
	desc := ""

	cases := []struct {
		name  string
		patch RewardPatch
	}{
		{"name", RewardPatch{Name: &name}},
		{"price", RewardPatch{Price: &price}},
		{"stock", RewardPatch{Stock: &stock}},
		{"description", RewardPatch{Description: &desc}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.patch.Empty() {
				t.Fatal("patch with a set field must not be empty")
			}
		})
	}
}
