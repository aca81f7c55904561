package memory

import "dogshelter/internal/domain/dogs"

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

// SeedDemoData loads a small fixed dataset into empty repos, matching
// the rows the SQL seed inserts. Useful for dev mode and end-to-end
// tests.
func SeedDemoData(breedsRepo *BreedsRepo, dogsRepo *DogsRepo) {
	labrador := breedsRepo.Add("Labrador")
	shepherd := breedsRepo.Add("German Shepherd")
	bulldog := breedsRepo.Add("Bulldog")
	breedsRepo.Add("Greyhound")

	dogsRepo.Add(dogs.Dog{
		Name:        "Buddy",
		BreedID:     labrador.ID,
		Age:         intp(3),
		Description: strp("Friendly dog"),
		Gender:      strp("Male"),
		Status:      dogs.StatusAvailable,
	})
	dogsRepo.Add(dogs.Dog{
		Name:        "Max",
		BreedID:     shepherd.ID,
		Age:         intp(5),
		Description: strp("Smart dog"),
		Gender:      strp("Male"),
		Status:      dogs.StatusAvailable,
	})
	dogsRepo.Add(dogs.Dog{
		Name:        "Rocky",
		BreedID:     bulldog.ID,
		Age:         intp(4),
		Description: strp("Calm and loyal"),
		Gender:      strp("Male"),
		Status:      dogs.StatusAdopted,
	})
	dogsRepo.Add(dogs.Dog{
		Name:        "Luna",
		BreedID:     labrador.ID,
		Age:         intp(2),
		Description: strp("Loves long walks"),
		Gender:      strp("Female"),
		Status:      dogs.StatusAvailable,
	})
}
