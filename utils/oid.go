package utils

import "go.mongodb.org/mongo-driver/v2/bson"

func Oid(hex string) (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(hex)
}

// Oids parses a list of hex ids, failing on the first invalid one.
func Oids(hexes []string) ([]bson.ObjectID, error) {
	out := make([]bson.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		oid, err := bson.ObjectIDFromHex(h)
		if err != nil {
			return nil, err
		}
		out = append(out, oid)
	}
	return out, nil
}

// DedupeOids removes duplicate ids preserving first-seen order.
func DedupeOids(ids []bson.ObjectID) []bson.ObjectID {
	seen := make(map[bson.ObjectID]struct{}, len(ids))
	out := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
