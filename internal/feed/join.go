package feed

import "context"

// attachByKey performs the denormalized join used everywhere the store
// cannot: collect the distinct foreign keys of the primary slice, fetch all
// matching secondary records in one batched query, attach by in-memory map
// lookup. Primaries whose key has no match get nil. An empty key set issues
// no query at all, so a zero-row primary result never hits the secondary
// collection.
func attachByKey[P, S any](
	ctx context.Context,
	primaries []P,
	foreignKey func(P) string,
	fetch func(context.Context, []string) ([]S, error),
	key func(S) string,
	assign func(*P, *S),
) error {
	if len(primaries) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(primaries))
	keys := make([]string, 0, len(primaries))
	for i := range primaries {
		k := foreignKey(primaries[i])
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	if len(keys) == 0 {
		for i := range primaries {
			assign(&primaries[i], nil)
		}
		return nil
	}

	secondaries, err := fetch(ctx, keys)
	if err != nil {
		return err
	}

	byKey := make(map[string]*S, len(secondaries))
	for i := range secondaries {
		byKey[key(secondaries[i])] = &secondaries[i]
	}

	for i := range primaries {
		assign(&primaries[i], byKey[foreignKey(primaries[i])])
	}

	return nil
}
