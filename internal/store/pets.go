package store

import (
	"context"
	"fmt"

	"pet-care-tracker/internal/domain/pets"
)

func (s *Store) Pets() []pets.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pets.list()
}

// Pet devuelve false si no existe; nunca falla.
func (s *Store) Pet(id string) (pets.Pet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pets.get(id)
}

func (s *Store) PetExists(id string) bool {
	_, ok := s.Pet(id)
	return ok
}

// AddPet asigna un id nuevo (se ignora el que venga en p) y persiste.
func (s *Store) AddPet(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	s.mu.Lock()
	created, err := insert(ctx, s, &s.pets, p.AssignNestedIDs(s.newID))
	s.mu.Unlock()
	if err != nil {
		return pets.Pet{}, err
	}

	s.emit(ctx, toast(KeyPets, created.ID, "Pet Added",
		fmt.Sprintf("%s has been added to your pets.", created.Name)))
	return created, nil
}

// UpdatePet reemplaza el registro completo: lo que no venga en p se pierde.
func (s *Store) UpdatePet(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	s.mu.Lock()
	updated, err := replace(ctx, s, &s.pets, p.AssignNestedIDs(s.newID))
	s.mu.Unlock()
	if err != nil {
		return pets.Pet{}, err
	}

	s.emit(ctx, toast(KeyPets, updated.ID, "Pet Updated",
		fmt.Sprintf("%s's information has been updated.", updated.Name)))
	return updated, nil
}

// DeletePet borra la mascota y en cascada todo lo que tenga su petId.
// Si el id no existe no hace nada.
func (s *Store) DeletePet(ctx context.Context, id string) error {
	s.mu.Lock()
	removed, found, err := s.deletePetLocked(ctx, id)
	s.mu.Unlock()
	if err != nil || !found {
		return err
	}

	s.emit(ctx, toast(KeyPets, removed.ID, "Pet Removed",
		fmt.Sprintf("%s has been removed from your pets.", removed.Name)))
	return nil
}

// deletePetLocked escribe primero las colecciones dependientes y al final la mascota.
// Cada colección se publica al persistirse, así memoria y medium no divergen si
// una escritura intermedia falla.
func (s *Store) deletePetLocked(ctx context.Context, id string) (pets.Pet, bool, error) {
	if _, ok := s.pets.get(id); !ok {
		return pets.Pet{}, false, nil
	}

	counts := map[string]int{}
	var err error

	if counts[KeyReminders], err = dropOwned(ctx, s, &s.reminders, id); err != nil {
		return pets.Pet{}, false, err
	}
	if counts[KeyHealthLogs], err = dropOwned(ctx, s, &s.healthLogs, id); err != nil {
		return pets.Pet{}, false, err
	}
	if counts[KeyFeedingSchedules], err = dropOwned(ctx, s, &s.feeding, id); err != nil {
		return pets.Pet{}, false, err
	}
	if counts[KeyTrainingSessions], err = dropOwned(ctx, s, &s.training, id); err != nil {
		return pets.Pet{}, false, err
	}
	if counts[KeyDocuments], err = dropOwned(ctx, s, &s.documents, id); err != nil {
		return pets.Pet{}, false, err
	}

	removed, found, err := remove(ctx, s, &s.pets, id)
	if err != nil {
		return pets.Pet{}, false, err
	}

	s.log.Info("pet deleted", map[string]any{"pet_id": id, "cascade": counts})
	return removed, found, nil
}
