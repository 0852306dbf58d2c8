package seed

import (
	"context"
	"fmt"

	"trivia/pkg/types"
)

type QuestionSeeder interface {
	CountQuestions(ctx context.Context) (int, error)
	CreateQuestion(ctx context.Context, question *types.Question) error
}

var sampleQuestions = []types.Question{
	{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
	{Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1},
	{Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
	{Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Category: 6, Difficulty: 3},
	{Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: 6, Difficulty: 4},
	{Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
	{Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Category: 3, Difficulty: 2},
	{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
	{Question: "Which Dutch graphic artist, initials M C, was a creator of optical illusions?", Answer: "Escher", Category: 2, Difficulty: 1},
	{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
	{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
	{Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: 1, Difficulty: 4},
}

// SeedQuestions loads the sample questions into an empty question table and
// leaves a populated one alone. It returns the questions it created.
func SeedQuestions(ctx context.Context, repo QuestionSeeder) ([]types.Question, error) {
	count, err := repo.CountQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	if count > 0 {
		return nil, nil
	}

	created := make([]types.Question, 0, len(sampleQuestions))
	for _, q := range sampleQuestions {
		question := q
		if err := repo.CreateQuestion(ctx, &question); err != nil {
			return nil, fmt.Errorf("failed to seed question %q: %w", question.Question, err)
		}
		created = append(created, question)
	}

	return created, nil
}
