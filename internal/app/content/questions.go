package content

// Question is one self-assessment item, rated 1-5.
type Question struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	Element string `json:"element"` // slug of the element this question scores toward
}

// RatingMin and RatingMax bound a single answer.
const (
	RatingMin = 1
	RatingMax = 5
)

// QuestionsPerElement is the number of questions scoring toward each element.
const QuestionsPerElement = 4

// Questions is the fixed question bank, presented in this order.
var Questions = []Question{
	{1, "New ideas arrive faster than I can write them down.", "electric"},
	{2, "I feel most alive at the start of something, not the finish.", "electric"},
	{3, "People say I change the energy of a room when I walk in.", "electric"},
	{4, "Sitting still for long stretches drains me more than hard work does.", "electric"},
	{5, "Once I commit to a goal, very little can talk me out of it.", "fiery"},
	{6, "I would rather make a bold wrong call than a timid right one.", "fiery"},
	{7, "Competition brings out my best performance.", "fiery"},
	{8, "I push through obstacles instead of going around them.", "fiery"},
	{9, "I usually sense how someone feels before they say a word.", "aquatic"},
	{10, "I adapt my plans easily when circumstances shift.", "aquatic"},
	{11, "Friends come to me first when they need to talk something through.", "aquatic"},
	{12, "I need regular quiet time to process what I'm feeling.", "aquatic"},
	{13, "I finish what I start, even when the excitement has worn off.", "earthly"},
	{14, "Routines make me stronger, not bored.", "earthly"},
	{15, "I'd rather improve something proven than chase something new.", "earthly"},
	{16, "People rely on me to be the steady one under pressure.", "earthly"},
	{17, "I connect ideas from fields that seem unrelated to others.", "airy"},
	{18, "I think better about a problem after stepping away from it.", "airy"},
	{19, "Abstract questions interest me more than practical ones.", "airy"},
	{20, "I notice patterns in situations before I notice details.", "airy"},
	{21, "I hold my work to a higher standard than anyone asks of me.", "metallic"},
	{22, "I refine and edit until a thing is exactly right.", "metallic"},
	{23, "Clear rules and structure help me do my best work.", "metallic"},
	{24, "I stay composed when everything around me is chaotic.", "metallic"},
}

// QuestionByID returns the question with the given id, or false if unknown.
func QuestionByID(id int) (Question, bool) {
	for _, q := range Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
