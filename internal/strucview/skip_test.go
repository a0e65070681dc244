package strucview

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestSkipDecisionsResolveCachesAnswers(testingHandle *testing.T) {
	decisions := NewSkipDecisions()
	callCount := 0
	prompter := PrompterFunc(func(_ context.Context, directoryName string) (bool, error) {
		callCount++
		return directoryName == "dist", nil
	})
	for attempt := 0; attempt < 3; attempt++ {
		verdict, resolveError := decisions.Resolve(context.Background(), "dist", prompter)
		if resolveError != nil || !verdict {
			testingHandle.Fatalf("expected dist to resolve as skipped, got %t, %v", verdict, resolveError)
		}
	}
	verdict, resolveError := decisions.Resolve(context.Background(), "build", prompter)
	if resolveError != nil || verdict {
		testingHandle.Fatalf("expected build to resolve as kept, got %t, %v", verdict, resolveError)
	}
	if callCount != 2 {
		testingHandle.Fatalf("expected two prompts, got %d", callCount)
	}
	if decisions.Len() != 2 {
		testingHandle.Fatalf("expected two cached verdicts, got %d", decisions.Len())
	}
	if !reflect.DeepEqual(decisions.Skipped(), []string{"dist"}) {
		testingHandle.Fatalf("unexpected skipped names %v", decisions.Skipped())
	}
}

func TestSkipDecisionsResolveDoesNotCacheErrors(testingHandle *testing.T) {
	decisions := NewSkipDecisions()
	failure := errors.New("closed input")
	prompter := PrompterFunc(func(context.Context, string) (bool, error) {
		return false, failure
	})
	if _, resolveError := decisions.Resolve(context.Background(), "dist", prompter); !errors.Is(resolveError, failure) {
		testingHandle.Fatalf("expected failure, got %v", resolveError)
	}
	if _, known := decisions.Lookup("dist"); known {
		testingHandle.Fatalf("failed prompt must not be cached")
	}
}
