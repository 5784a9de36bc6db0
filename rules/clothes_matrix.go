package rules

// ClothingSuggestion is one cell of the age × temperature clothing matrix.
type ClothingSuggestion struct {
	// 親向けの簡単な説明文
	Summary string `json:"summary"`
	// 具体的な服装の例（レイヤー）
	Layers []string `json:"layers"`
	// 注意点・医学的な観点からのコメント
	Notes []string `json:"notes"`
	// 参考にした日本の公的リンク
	References []string `json:"references"`
}

// ClothesMatrix is the static age-group × temperature-band suggestion table.
// Every (AgeGroup, TemperatureBand) combination has an entry; LookupSuggestion
// and the tests rely on that completeness.
var ClothesMatrix = map[AgeGroup]map[TemperatureBand]ClothingSuggestion{
	AgeInfant: {
		BandVeryCold: {
			Summary: "とても寒い日。大人より1枚多めを目安に、しっかり保温しましょう。",
			Layers:  []string{"長袖肌着（ロンパース）", "厚手カバーオール", "中綿アウター", "帽子", "厚手ソックス", "ブランケット"},
			Notes:   []string{"手足が冷たくても背中やお腹が温かければ大丈夫です", "車内や室内では中綿アウターを脱がせて汗をかかせないように"},
		},
		BandCold: {
			Summary: "寒い日。肌着＋カバーオールにアウターを重ねて調整を。",
			Layers:  []string{"長袖肌着（ロンパース）", "カバーオール", "フリースアウター", "帽子", "靴下"},
			Notes:   []string{"抱っこひもの中は想像以上に暖かいので着せすぎに注意"},
		},
		BandCool: {
			Summary: "少し肌寒い日。薄手の重ね着で体温調節しやすく。",
			Layers:  []string{"長袖肌着（ロンパース）", "長袖カバーオール", "薄手カーディガン", "靴下"},
			Notes:   []string{"朝晩と日中の気温差が大きい時期です。脱がせられる1枚を"},
		},
		BandMild: {
			Summary: "過ごしやすい気温。薄手の長袖を基本に。",
			Layers:  []string{"長袖肌着（ロンパース）", "長袖カバーオール"},
			Notes:   []string{"背中に汗をかいていないかこまめに確認を"},
		},
		BandWarm: {
			Summary: "暖かい日。通気性の良い薄手素材で快適に。",
			Layers:  []string{"半袖肌着（ロンパース）", "薄手カバーオール"},
			Notes:   []string{"直射日光を避け、こまめな水分補給（授乳）を"},
		},
		BandHot: {
			Summary: "暑い日。1枚で十分。汗とあせもに注意しましょう。",
			Layers:  []string{"半袖肌着（ロンパース）"},
			Notes:   []string{"乳児は体温調節が未熟です。外出は涼しい時間帯に", "汗をかいたら早めに着替えを"},
		},
	},
	AgeToddler: {
		BandVeryCold: {
			Summary: "とても寒い日。風を通さないアウターでしっかり防寒を。",
			Layers:  []string{"長袖肌着", "長袖Tシャツ", "トレーナー", "中綿アウター", "帽子", "手袋", "厚手ソックス"},
			Notes:   []string{"外遊びで汗をかいたら中間着を1枚減らして調整を", "マフラーは遊具に引っかかる恐れがあるため注意"},
		},
		BandCold: {
			Summary: "寒い日。動きやすさを保ちつつ重ね着で保温しましょう。",
			Layers:  []string{"長袖肌着", "長袖Tシャツ", "トレーナー", "フリースアウター", "帽子"},
			Notes:   []string{"よく動く子は大人より1枚少なめが目安です"},
		},
		BandCool: {
			Summary: "少し肌寒い日。脱ぎ着しやすい羽織で調整を。",
			Layers:  []string{"長袖Tシャツ", "薄手パーカー", "ズボン", "靴下"},
			Notes:   []string{"遊びで体温が上がりやすいので羽織はすぐ脱げるものを"},
		},
		BandMild: {
			Summary: "過ごしやすい気温。長袖1枚＋薄手の羽織で十分です。",
			Layers:  []string{"長袖Tシャツ", "カーディガン", "ズボン"},
			Notes:   []string{"朝夕の冷え込みに備えて薄手の羽織を持たせると安心です"},
		},
		BandWarm: {
			Summary: "暖かい日。半袖を基本に、動きやすい服装で。",
			Layers:  []string{"半袖Tシャツ", "ハーフパンツ"},
			Notes:   []string{"帽子で日差し対策を。水分補給をこまめに"},
		},
		BandHot: {
			Summary: "暑い日。通気性の良い軽装で熱中症対策を。",
			Layers:  []string{"半袖Tシャツ", "ハーフパンツ"},
			Notes:   []string{"幼児は大人より熱中症リスクが高めです。外遊びは短時間で", "吸汗速乾素材がおすすめです"},
		},
	},
	AgeChild: {
		BandVeryCold: {
			Summary: "とても寒い日。登下校や外遊びに備えてしっかり防寒を。",
			Layers:  []string{"長袖肌着", "長袖Tシャツ", "セーター", "ダウンアウター", "帽子", "手袋", "厚手ソックス"},
			Notes:   []string{"教室は暖かいため、脱いで調整できる重ね着にしましょう"},
		},
		BandCold: {
			Summary: "寒い日。中間着＋アウターで体温調節しやすく。",
			Layers:  []string{"長袖肌着", "長袖Tシャツ", "トレーナー", "フリースアウター"},
			Notes:   []string{"運動するとすぐ暑くなります。前開きのアウターが便利です"},
		},
		BandCool: {
			Summary: "少し肌寒い日。薄手の重ね着で気温差に対応を。",
			Layers:  []string{"長袖Tシャツ", "薄手パーカー", "ズボン"},
			Notes:   []string{"日中は暖かくなることが多いので脱ぎやすい羽織を"},
		},
		BandMild: {
			Summary: "過ごしやすい気温。長袖シャツ＋羽織がちょうど良いです。",
			Layers:  []string{"長袖Tシャツ", "カーディガン", "ズボン"},
			Notes:   []string{"体感には個人差があります。本人の感覚も尊重しましょう"},
		},
		BandWarm: {
			Summary: "暖かい日。半袖で活動的に過ごせます。",
			Layers:  []string{"半袖Tシャツ", "ハーフパンツ"},
			Notes:   []string{"日差しが強い日は帽子を忘れずに"},
		},
		BandHot: {
			Summary: "暑い日。軽装＋水分補給で熱中症を予防しましょう。",
			Layers:  []string{"半袖Tシャツ", "ハーフパンツ"},
			Notes:   []string{"屋外活動の前後に必ず水分補給を", "汗をかいたら着替えて体を冷やさないように"},
		},
	},
}

// LookupSuggestion returns the matrix cell for the group and band. The
// returned value carries the shared medical reference links.
func LookupSuggestion(group AgeGroup, band TemperatureBand) ClothingSuggestion {
	s := ClothesMatrix[group][band]
	s.References = allReferences
	return s
}
