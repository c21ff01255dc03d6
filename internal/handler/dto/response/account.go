package response

import "salon-booking/internal/usecase/queries"

type ProfileResponse = queries.ProfileView
