package record

import "strings"

// PubType is the category of a publication. Its value is the
// numeric code of the institutional repository vocabulary, for
// example "1.1" for a journal article. The empty PubType means the
// category is absent.
type PubType string

const (
	PubTypeAbsent PubType = ""

	JournalArticle     PubType = "1.1"
	JournalReview      PubType = "1.2"
	JournalAbstract    PubType = "1.3"
	JournalTranslation PubType = "1.4"
	BookChapter        PubType = "2.1"
	Preface            PubType = "2.2"
	ShortIntroduction  PubType = "2.3"
	BookTranslation    PubType = "2.5"
	Monograph          PubType = "3.1"
	Proceedings        PubType = "4.1"
	ConferenceAbstract PubType = "4.2"
	Poster             PubType = "4.3"
	Other              PubType = "5.12"
	Patent             PubType = "6.1"
	Editorship         PubType = "7.1"
)

var pubTypeLabels = map[PubType]string{
	JournalArticle:     "Articolo in rivista",
	JournalReview:      "Recensione in rivista",
	JournalAbstract:    "Abstract in rivista",
	JournalTranslation: "Traduzione in rivista",
	BookChapter:        "Contributo in volume",
	Preface:            "Prefazione/Postfazione",
	ShortIntroduction:  "Breve introduzione",
	BookTranslation:    "Traduzione in volume",
	Monograph:          "Monografia o trattato scientifico",
	Proceedings:        "Contributo in atti di convegno",
	ConferenceAbstract: "Abstract in atti di convegno",
	Poster:             "Poster",
	Other:              "Altro",
	Patent:             "Brevetto",
	Editorship:         "Curatela",
}

// NewPubType extracts the category code from a repository label
// such as "1.1 Articolo in rivista". Codes outside of the known
// vocabulary are kept as they are, so that scoring can refuse them.
func NewPubType(label string) PubType {
	label = strings.TrimSpace(label)
	if label == "" {
		return PubTypeAbsent
	}
	code, _, _ := strings.Cut(label, " ")
	return PubType(code)
}

// Known is true if the code belongs to the vocabulary.
func (pt PubType) Known() bool {
	_, ok := pubTypeLabels[pt]
	return ok
}

// Label returns the full repository label.
func (pt PubType) Label() string {
	if l, ok := pubTypeLabels[pt]; ok {
		return string(pt) + " " + l
	}
	return string(pt)
}
