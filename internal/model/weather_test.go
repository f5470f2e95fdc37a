package model

import "testing"

func TestConditionFromCode(t *testing.T) {
	tests := []struct {
		code     int
		expected Condition
	}{
		{0, ConditionClear},
		{1, ConditionPartlyCloudy},
		{2, ConditionPartlyCloudy},
		{3, ConditionPartlyCloudy},
		{45, ConditionCloudy},
		{48, ConditionCloudy},
		{51, ConditionRain},
		{61, ConditionRain},
		{82, ConditionRain},
		{71, ConditionSnow},
		{86, ConditionSnow},
		{95, ConditionStorm},
		{99, ConditionStorm},
		{1234, ConditionClear},
		{-1, ConditionClear},
	}

	for _, test := range tests {
		result := ConditionFromCode(test.code)
		if result != test.expected {
			t.Errorf("ConditionFromCode(%d) = %s, expected %s", test.code, result, test.expected)
		}
	}
}
