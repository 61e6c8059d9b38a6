package morphology

// cliticFeats are the proclitic and enclitic features given default values
// from the pos defaults when left unspecified.
var cliticFeats = []string{"prc0", "prc1", "prc2", "prc3", "enc0"}

// Generator produces surface forms for a lemma and a feature specification
// from a DB opened for generation.
type Generator struct {
	db *DB
}

// NewGenerator builds a Generator over db.
func NewGenerator(db *DB) (*Generator, error) {
	if db == nil {
		return nil, &GeneratorError{Msg: "generator db is nil"}
	}
	if !db.Flags.Generation {
		return nil, &GeneratorError{Msg: "db does not support generation"}
	}
	return &Generator{db: db}, nil
}

// AllFeats returns the set of features defined by the underlying database.
func (g *Generator) AllFeats() map[string]struct{} { return g.db.AllFeats() }

// TokFeats returns the set of tokenization features defined by the
// underlying database.
func (g *Generator) TokFeats() map[string]struct{} { return g.db.TokFeats() }

// Generate produces all analyses of lemma matching feats. The "pos" feature
// is required; features must be defined in the database and take values from
// their defined value sets.
func (g *Generator) Generate(lemma string, feats Analysis) ([]Analysis, error) {
	stemFeatsList, ok := g.db.LemmaHash[lemma]
	if !ok {
		return nil, nil
	}

	for feat, val := range feats {
		vals, ok := g.db.Defines[feat]
		if !ok {
			return nil, &InvalidGeneratorFeatureError{Feat: feat}
		}
		if vals != nil && !contains(vals, val) {
			return nil, &InvalidGeneratorFeatureValueError{Feat: feat, Value: val}
		}
	}

	pos, ok := feats["pos"]
	if !ok || !contains(g.db.Defines["pos"], pos) {
		return nil, &InvalidGeneratorFeatureValueError{Feat: "pos", Value: pos}
	}

	defaults := g.db.Defaults[pos]
	for feat := range feats {
		if _, ok := defaults[feat]; !ok {
			return nil, nil
		}
	}

	feats = feats.Clone()
	for _, feat := range cliticFeats {
		if _, ok := feats[feat]; ok {
			continue
		}
		if val, ok := defaults[feat]; ok {
			feats[feat] = val
		}
	}

	var analyses []Analysis

	for _, stemFeats := range stemFeatsList {
		if !stemMatches(stemFeats, feats) {
			continue
		}

		prefixCats := g.db.StemPrefixCompat[stemFeats["stemcat"]]
		suffixCats := g.db.StemSuffixCompat[stemFeats["stemcat"]]

		for prefixCat := range prefixCats {
			prefixFeatsList, ok := g.db.PrefixCatHash[prefixCat]
			if !ok {
				continue
			}
			compatSuffixes := g.db.PrefixSuffixCompat[prefixCat]

			for _, prefixFeats := range prefixFeatsList {
				if !prefixMatches(prefixFeats, stemFeats, feats) {
					continue
				}

				for suffixCat := range suffixCats {
					if _, ok := compatSuffixes[suffixCat]; !ok {
						continue
					}
					suffixFeatsList, ok := g.db.SuffixCatHash[suffixCat]
					if !ok {
						continue
					}

					for _, suffixFeats := range suffixFeatsList {
						if !suffixMatches(suffixFeats, stemFeats, feats) {
							continue
						}

						merged := mergeFeatures(g.db, prefixFeats, stemFeats,
							suffixFeats, "AF")

						if analysisMatches(merged, feats) {
							analyses = append(analyses, merged)
						}
					}
				}
			}
		}
	}

	return analyses, nil
}

// stemMatches filters stems on voice, rationality, pos and any clitics baked
// into the stem.
func stemMatches(stemFeats, feats Analysis) bool {
	for _, feat := range []string{"vox", "rat", "pos"} {
		if want, ok := feats[feat]; ok && stemFeats[feat] != want {
			return false
		}
	}

	for _, feat := range cliticFeats {
		want, ok := feats[feat]
		if !ok {
			continue
		}
		if stemVal, ok := stemFeats[feat]; ok && stemVal != "0" && want != stemVal {
			return false
		}
	}

	return true
}

func prefixMatches(prefixFeats, stemFeats, feats Analysis) bool {
	for _, feat := range []string{"prc0", "prc1", "prc2", "prc3"} {
		want, ok := feats[feat]
		if !ok {
			continue
		}

		prefixVal, inPrefix := prefixFeats[feat]
		if inPrefix {
			if want != prefixVal {
				return false
			}
			continue
		}

		stemVal, inStem := stemFeats[feat]
		if !inStem {
			stemVal = "0"
		}
		if want != "0" && stemVal != want {
			return false
		}
	}

	return true
}

func suffixMatches(suffixFeats, stemFeats, feats Analysis) bool {
	want, ok := feats["enc0"]
	if !ok {
		return true
	}

	suffixVal, inSuffix := suffixFeats["enc0"]
	if inSuffix {
		return want == suffixVal
	}

	stemVal, inStem := stemFeats["enc0"]
	if !inStem {
		stemVal = "0"
	}
	return want == "0" || stemVal == want
}

func analysisMatches(merged, feats Analysis) bool {
	for feat, want := range feats {
		if got, ok := merged[feat]; ok && got != want {
			return false
		}
	}
	return true
}
