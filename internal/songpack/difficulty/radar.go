package difficulty

import "github.com/shiroemons/go-songpack/internal/songpack/models"

// Metrics はグルーヴレーダーの項目名の一覧です
var Metrics = []string{"voltage", "stream", "air", "chaos", "freeze"}

// RadarKey はレーダー値のフィールド名を返します（例: voltage_single_heavy）
func RadarKey(metric, mode, level string) string {
	return metric + "_" + mode + "_" + level
}

// BuildRadar はブロックのフィールドからグルーヴレーダーを組み立てます
// 存在しないフィールドは0になります。シングルのbeginnerは設定で有効な場合のみ含めます
func BuildRadar(fields Lookup, includeSingleBeginner bool) models.Radar {
	single := radarMode(fields, "single")
	if includeSingleBeginner {
		beginner := radarStats(fields, "single", "beginner")
		single.Beginner = &beginner
	}
	return models.Radar{
		Single: single,
		Double: radarMode(fields, "double"),
	}
}

func radarMode(fields Lookup, mode string) models.RadarMode {
	return models.RadarMode{
		Light:     radarStats(fields, mode, "light"),
		Standard:  radarStats(fields, mode, "standard"),
		Heavy:     radarStats(fields, mode, "heavy"),
		Challenge: radarStats(fields, mode, "challenge"),
	}
}

func radarStats(fields Lookup, mode, level string) models.RadarStats {
	grab := func(metric string) int {
		v, _ := fields.Int(RadarKey(metric, mode, level))
		return v
	}
	return models.RadarStats{
		Voltage: grab("voltage"),
		Stream:  grab("stream"),
		Air:     grab("air"),
		Chaos:   grab("chaos"),
		Freeze:  grab("freeze"),
	}
}
