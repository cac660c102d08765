package doctors

import (
	"log"
	"strings"

	"medibuddy/internal/random"
)

type rule struct {
	keywords       []string
	specialization Specialization
}

// Rules are tested in order and the first match wins.
var rules = []rule{
	{keywords: []string{"skin", "rash"}, specialization: Dermatologist},
	{keywords: []string{"child", "pediatric"}, specialization: Pediatrician},
	{keywords: []string{"bone", "joint"}, specialization: OrthopedicSurgeon},
	{keywords: []string{"pregnancy", "gynec"}, specialization: Gynecologist},
	{keywords: []string{"ear", "nose", "throat"}, specialization: ENTSpecialist},
	{keywords: []string{"mental", "stress", "depression"}, specialization: Psychiatrist},
	{keywords: []string{"heart", "cardio"}, specialization: Cardiologist},
	{keywords: []string{"tooth", "dental"}, specialization: Dentist},
}

// Recommender maps a diagnosis to doctors from a fixed table.
type Recommender struct {
	doctors []Doctor
	rng     random.Source
}

// NewRecommender builds a Recommender over the built-in directory.
func NewRecommender(rng random.Source) *Recommender {
	return NewRecommenderWithDirectory(directory, rng)
}

// NewRecommenderWithDirectory builds a Recommender over a caller supplied table.
func NewRecommenderWithDirectory(table []Doctor, rng random.Source) *Recommender {
	doctors := make([]Doctor, len(table))
	copy(doctors, table)
	return &Recommender{doctors: doctors, rng: rng}
}

// Specialization returns the category a diagnosis maps to. Keywords are
// matched as substrings, so "heart" also matches "hearty" and "ear" matches
// "year".
func (r *Recommender) Specialization(diagnosis string) Specialization {
	diagnosis = strings.ToLower(diagnosis)
	for _, rl := range rules {
		for _, keyword := range rl.keywords {
			if strings.Contains(diagnosis, keyword) {
				return rl.specialization
			}
		}
	}
	return GeneralPhysician
}

// Recommend returns every doctor of the matched specialization in table
// order. When the table has none, it returns a random sample of two or three
// doctors from the whole table.
func (r *Recommender) Recommend(diagnosis string) []Doctor {
	spec := r.Specialization(diagnosis)

	var matched []Doctor
	for _, doc := range r.doctors {
		if doc.Specialization == spec {
			matched = append(matched, doc)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	log.Printf("[Doctors] No %s in directory, sampling random doctors", spec)
	return r.sample(2 + r.rng.IntN(2))
}

func (r *Recommender) sample(k int) []Doctor {
	if k > len(r.doctors) {
		k = len(r.doctors)
	}
	pool := make([]Doctor, len(r.doctors))
	copy(pool, r.doctors)

	out := make([]Doctor, 0, k)
	for i := 0; i < k; i++ {
		j := i + r.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		out = append(out, pool[i])
	}
	return out
}
