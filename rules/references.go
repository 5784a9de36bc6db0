package rules

// 医学的な参考 URL（日本の公的機関のみ）
//
// - 厚生労働省：母子保健事業ガイドライン（乳幼児の体温調節）
// - 国立成育医療研究センター：乳児の体温調節・育児基礎情報
// - 日本小児科医会：脱水・熱中症の注意喚起
// - 日本小児科学会：幼児の暑さ対策
const (
	RefMHLW  = "https://www.mhlw.go.jp/bunya/kodomo/boshi-hoken/"
	RefNCCHD = "https://www.ncchd.go.jp/"
	RefJPA   = "https://www.jpa-web.org/"
	RefJPeds = "https://www.jpeds.or.jp/"
)

var allReferences = []string{RefMHLW, RefNCCHD, RefJPA, RefJPeds}
