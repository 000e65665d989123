package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sportsmania/sports_mania_server/database"
	"github.com/sportsmania/sports_mania_server/handlers"
	"github.com/sportsmania/sports_mania_server/models"
	"github.com/sportsmania/sports_mania_server/routes"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserStore struct {
	users []models.User

	roleSet map[string]string // id hex -> role
}

func (f *fakeUserStore) FindAll(ctx context.Context, filter bson.M) ([]models.User, error) {
	role, filtered := filter["role"]
	if !filtered {
		return f.users, nil
	}
	var out []models.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Insert(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	if existing, _ := f.FindByEmail(ctx, user.Email); existing != nil {
		return primitive.NilObjectID, database.ErrAlreadyExists
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return user.ID, nil
}

func (f *fakeUserStore) SetRole(ctx context.Context, id primitive.ObjectID, role string) (int64, int64, error) {
	if f.roleSet == nil {
		f.roleSet = map[string]string{}
	}
	f.roleSet[id.Hex()] = role
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].Role = role
			return 1, 1, nil
		}
	}
	return 0, 0, nil
}

type fakeClassStore struct {
	classes []models.Class

	statusSet   map[string]string
	feedbackSet map[string]string
	seatsSynced map[string][2]int
}

func (f *fakeClassStore) Find(ctx context.Context, filter bson.M) ([]models.Class, error) {
	var out []models.Class
	for _, cl := range f.classes {
		if status, ok := filter["status"]; ok && cl.Status != status {
			continue
		}
		if email, ok := filter["instructorEmail"]; ok && cl.InstructorEmail != email {
			continue
		}
		out = append(out, cl)
	}
	return out, nil
}

func (f *fakeClassStore) Insert(ctx context.Context, class models.Class) (primitive.ObjectID, error) {
	for _, cl := range f.classes {
		if cl.ClassName == class.ClassName {
			return primitive.NilObjectID, database.ErrAlreadyExists
		}
	}
	class.ID = primitive.NewObjectID()
	f.classes = append(f.classes, class)
	return class.ID, nil
}

func (f *fakeClassStore) UpdateSeats(ctx context.Context, className string, availableSeats, enrolled int) (int64, int64, error) {
	if f.seatsSynced == nil {
		f.seatsSynced = map[string][2]int{}
	}
	f.seatsSynced[className] = [2]int{availableSeats, enrolled}
	for i := range f.classes {
		if f.classes[i].ClassName == className {
			f.classes[i].AvailableSeats = availableSeats
			f.classes[i].Enrolled = enrolled
			return 1, 1, nil
		}
	}
	return 0, 0, nil
}

func (f *fakeClassStore) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, int64, error) {
	if f.statusSet == nil {
		f.statusSet = map[string]string{}
	}
	f.statusSet[id.Hex()] = status
	for i := range f.classes {
		if f.classes[i].ID == id {
			f.classes[i].Status = status
			return 1, 1, nil
		}
	}
	return 0, 0, nil
}

func (f *fakeClassStore) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (int64, int64, error) {
	if f.feedbackSet == nil {
		f.feedbackSet = map[string]string{}
	}
	f.feedbackSet[id.Hex()] = feedback
	for i := range f.classes {
		if f.classes[i].ID == id {
			f.classes[i].Feedback = feedback
			return 1, 1, nil
		}
	}
	return 0, 0, nil
}

type fakeSelectionStore struct {
	selections []models.SelectedClass
}

func (f *fakeSelectionStore) Find(ctx context.Context, filter bson.M) ([]models.SelectedClass, error) {
	var out []models.SelectedClass
	for _, sel := range f.selections {
		if email, ok := filter["studentEmail"]; ok && sel.StudentEmail != email {
			continue
		}
		out = append(out, sel)
	}
	return out, nil
}

func (f *fakeSelectionStore) Insert(ctx context.Context, selection models.SelectedClass) (primitive.ObjectID, error) {
	for _, sel := range f.selections {
		if sel.ClassName == selection.ClassName && sel.StudentEmail == selection.StudentEmail {
			return primitive.NilObjectID, database.ErrAlreadyExists
		}
	}
	selection.ID = primitive.NewObjectID()
	f.selections = append(f.selections, selection)
	return selection.ID, nil
}

func (f *fakeSelectionStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	for i := range f.selections {
		if f.selections[i].ID == id {
			f.selections = append(f.selections[:i], f.selections[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakePaymentStore struct {
	payments []models.Payment
}

func (f *fakePaymentStore) Find(ctx context.Context, filter bson.M) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		if email, ok := filter["email"]; ok && p.Email != email {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePaymentStore) Insert(ctx context.Context, payment models.Payment) (primitive.ObjectID, error) {
	payment.ID = primitive.NewObjectID()
	f.payments = append(f.payments, payment)
	return payment.ID, nil
}

type fakeNatureStore struct {
	activities []models.NatureActivity
}

func (f *fakeNatureStore) FindAll(ctx context.Context) ([]models.NatureActivity, error) {
	return f.activities, nil
}

func newTestApp(h *handlers.Handler) *fiber.App {
	app := fiber.New()
	routes.AuthRoutes(app, h)
	routes.UserRoutes(app, h)
	routes.ClassRoutes(app, h)
	routes.NatureRoutes(app, h)
	routes.PaymentRoutes(app, h)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) *http.Response {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal request payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}
